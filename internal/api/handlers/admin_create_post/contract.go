package admin_create_post

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreatePost(ctx context.Context, title, body, imageURL string) (*domain.BlogPost, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
