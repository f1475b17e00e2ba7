package admin_panel

import (
	"context"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListAllSlots(ctx context.Context) ([]*domain.AvailabilitySlot, error)
	ListAllServices(ctx context.Context) ([]*domain.Service, error)
}

// ContentService интерфейс сервиса контента
type ContentService interface {
	AllPosts(ctx context.Context) ([]*domain.BlogPost, error)
	RecentBookings(ctx context.Context) ([]*domain.AdminBookingRow, error)
}

// Renderer интерфейс рендеринга страниц
type Renderer interface {
	AdminDashboard(w http.ResponseWriter, status int, data render.AdminDashboardData) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
