package content

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.GalleryImage, error)
}

// PostRepository интерфейс репозитория постов и комментариев
type PostRepository interface {
	Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.BlogPost, error)
	AddComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*domain.Comment, error)
}

// BookingRepository интерфейс репозитория бронирований (для админ-обзора)
type BookingRepository interface {
	ListRecentWithDetails(ctx context.Context, limit int) ([]*domain.AdminBookingRow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
