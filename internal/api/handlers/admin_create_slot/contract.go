package admin_create_slot

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/internal/service/catalog"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	CreateSlot(ctx context.Context, req catalog.CreateSlotRequest) (*domain.AvailabilitySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
