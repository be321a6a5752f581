package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/middleware"
	"github.com/formbridge/formbridge/internal/storage"
)

type SubmissionHandler struct {
	ds  storage.Datastore
	log *zap.Logger
}

func NewSubmissionHandler(ds storage.Datastore, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{ds: ds, log: log}
}

// List returns every submission, newest first. The auth middleware has
// already gated the request; no filtering or pagination here.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.ds.ListSubmissions()
	if err != nil {
		h.log.Error("failed to fetch submissions",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "failed to fetch submissions")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
