package auth

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// AdminUserRepository интерфейс репозитория администраторов
type AdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Create(ctx context.Context, u *domain.AdminUser) (*domain.AdminUser, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
