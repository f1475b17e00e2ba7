package admin_login

import (
	"context"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	IsAdmin(token string) bool
}

// Renderer интерфейс рендеринга страниц
type Renderer interface {
	AdminLogin(w http.ResponseWriter, status int, data render.AdminLoginData) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
