package admin_create_service

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/internal/service/catalog"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	CreateService(ctx context.Context, req catalog.CreateServiceRequest) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
