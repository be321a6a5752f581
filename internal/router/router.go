package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/auth"
	"github.com/formbridge/formbridge/internal/handler"
	mw "github.com/formbridge/formbridge/internal/middleware"
	"github.com/formbridge/formbridge/web"
)

func New(
	log *zap.Logger,
	jwtSecret string,
	authH *handler.AuthHandler,
	intakeH *handler.IntakeHandler,
	subH *handler.SubmissionHandler,
	adminH *handler.AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery(log))
	r.Use(mw.Logger(log))
	r.Use(mw.Metrics)

	r.Get("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Embed script served to storefront themes
	static, _ := fs.Sub(web.Assets, "static")
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(static))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)

		// Public intake: arbitrary storefront origins, CORS on every response.
		// HandleFunc (all methods) so the handler owns the 405 path.
		r.Group(func(r chi.Router) {
			r.Use(mw.CORS)
			r.HandleFunc("/public/submit", intakeH.Submit)
		})

		// Same-origin intake from inside the admin surface: identical
		// validation, no CORS.
		r.HandleFunc("/submit", intakeH.Submit)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Get("/submissions", subH.List)
		})
	})

	r.Route("/app", func(r chi.Router) {
		r.Get("/login", adminH.LoginPage)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Get("/admin", adminH.Submissions)
		})
	})

	return r
}
