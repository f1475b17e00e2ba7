package create_booking

import (
	"context"
	"net/http"

	bookingUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/create_booking"
)

// BookingUseCase интерфейс сценария создания бронирования
type BookingUseCase interface {
	Execute(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error)
}

// HomeRenderer интерфейс повторного рендеринга публичной страницы
// с сообщениями отклоненной заявки
type HomeRenderer interface {
	RenderPage(w http.ResponseWriter, r *http.Request, status int, formErrors []string, success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
