package customer_lookup

import (
	"context"

	lookupUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/lookup_customer"
)

// LookupUseCase интерфейс сценария поиска клиента
type LookupUseCase interface {
	Execute(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
