package create_booking

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/internal/service/customers"
)

// SlotRepository интерфейс репозитория временных блоков
// Внутри транзакции GetByID блокирует строку блока (FOR UPDATE)
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountBySlot(ctx context.Context, slotID int64) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AddServices(ctx context.Context, bookingID int64, serviceIDs []int64) error
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetActiveByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// CustomerResolver интерфейс сервиса идентификации клиентов
type CustomerResolver interface {
	Resolve(ctx context.Context, input customers.ResolveInput) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
