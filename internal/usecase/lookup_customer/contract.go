package lookup_customer

import (
	"context"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// CustomerFinder интерфейс сервиса поиска клиентов по контакту
type CustomerFinder interface {
	Lookup(ctx context.Context, phone, email string) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
