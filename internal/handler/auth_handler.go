package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/formbridge/formbridge/internal/auth"
)

// AuthHandler issues admin session tokens. There is a single admin identity,
// held in config; the storefront side of the service has no accounts at all.
type AuthHandler struct {
	adminEmail   string
	passwordHash string
	jwtSecret    string
	log          *zap.Logger
}

func NewAuthHandler(adminEmail, passwordHash, jwtSecret string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		log:          log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if req.Email != h.adminEmail || !auth.CheckPassword(req.Password, h.passwordHash) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, req.Email)
	if err != nil {
		h.log.Error("failed to sign session token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	// Cookie for the server-rendered admin pages; token for API callers.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
