package handler

import (
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/middleware"
	"github.com/formbridge/formbridge/internal/models"
	"github.com/formbridge/formbridge/internal/storage"
	"github.com/formbridge/formbridge/web"
)

// AdminHandler renders the merchant-facing pages. The submissions page is
// read-only; it never writes.
type AdminHandler struct {
	ds   storage.Datastore
	log  *zap.Logger
	tmpl *template.Template
}

func NewAdminHandler(ds storage.Datastore, log *zap.Logger) (*AdminHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Local().Format("Jan 2, 2006 3:04 PM")
		},
	}).ParseFS(web.Assets, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &AdminHandler{ds: ds, log: log, tmpl: tmpl}, nil
}

type adminPageData struct {
	Submissions []models.Submission
	Error       string
}

func (h *AdminHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	data := adminPageData{}
	subs, err := h.ds.ListSubmissions()
	if err != nil {
		h.log.Error("failed to fetch submissions",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)
		data.Error = "Failed to fetch submissions"
	} else {
		data.Submissions = subs
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "admin.html", data); err != nil {
		h.log.Error("failed to render admin page", zap.Error(err))
	}
}

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "login.html", nil); err != nil {
		h.log.Error("failed to render login page", zap.Error(err))
	}
}
