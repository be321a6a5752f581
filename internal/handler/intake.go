package handler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/middleware"
	"github.com/formbridge/formbridge/internal/models"
	"github.com/formbridge/formbridge/internal/storage"
	"github.com/formbridge/formbridge/internal/validation"
)

// Contact forms are three text fields; anything bigger is not a form.
const maxFormBytes = 64 << 10

type IntakeHandler struct {
	ds  storage.Datastore
	log *zap.Logger
}

func NewIntakeHandler(ds storage.Datastore, log *zap.Logger) *IntakeHandler {
	return &IntakeHandler{ds: ds, log: log}
}

// Submit validates and stores one contact-form submission. Both the public
// and the same-origin route run this handler; the public route additionally
// sits behind the CORS middleware, which also answers preflight OPTIONS.
// Intake is deliberately unauthenticated — field validation is the only
// admission control.
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	// The storefront widget posts multipart (FormData); curl and themes that
	// submit natively send urlencoded. ParseMultipartForm handles both.
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))

	if err := validation.ValidateSubmission(name, email, phone); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := &models.Submission{Name: name, Email: email, Phone: phone}
	if shop := strings.TrimSpace(r.FormValue("shop")); shop != "" {
		sub.Shop = &shop
	}

	if err := h.ds.CreateSubmission(sub); err != nil {
		h.log.Error("failed to save submission",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "failed to save submission")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": sub.ID})
}
