package admin_add_gallery

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	AddInstagramImage(ctx context.Context, title, imageURL string) (*domain.GalleryImage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
