package admin_login

import (
	"errors"
	"net/http"
	"time"

	"github.com/dvbeauty/DVB-BookingService/internal/api/middleware"
	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
	"github.com/dvbeauty/DVB-BookingService/internal/service/auth"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgLoginFailed        = "Something went wrong. Please try again."
)

type Handler struct {
	auth       AuthService
	renderer   Renderer
	sessionTTL time.Duration
	logger     Logger
}

func NewHandler(authSvc AuthService, renderer Renderer, sessionTTL time.Duration, logger Logger) *Handler {
	return &Handler{
		auth:       authSvc,
		renderer:   renderer,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// HandleForm GET /admin/login
// Администратор с живой сессией сразу попадает в панель
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil && h.auth.IsAdmin(cookie.Value) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.renderer.AdminLogin(w, http.StatusOK, render.AdminLoginData{}); err != nil {
		h.logger.Error("GET /admin/login - Failed to render page: %v", err)
	}
}

// HandleSubmit POST /admin/login
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/login - Invalid form: %v", err)
		h.renderLoginError(w, http.StatusBadRequest, msgLoginFailed)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.renderLoginError(w, http.StatusUnauthorized, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Login failed: %v", err)
			h.renderLoginError(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) renderLoginError(w http.ResponseWriter, status int, message string) {
	if err := h.renderer.AdminLogin(w, status, render.AdminLoginData{Error: message}); err != nil {
		h.logger.Error("POST /admin/login - Failed to render page: %v", err)
	}
}
