package render_home

import (
	"context"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListActiveServices(ctx context.Context) ([]*domain.Service, error)
	ListUpcomingSlots(ctx context.Context) ([]*domain.SlotWithCount, error)
}

// ContentService интерфейс сервиса контента
type ContentService interface {
	HomeGallery(ctx context.Context) ([]*domain.GalleryImage, error)
	HomePosts(ctx context.Context) ([]*domain.BlogPost, error)
}

// Renderer интерфейс рендеринга страниц
type Renderer interface {
	Home(w http.ResponseWriter, status int, data render.HomeData) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
