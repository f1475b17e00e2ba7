package create_booking

import (
	"time"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
)

// Request модель заявки на бронирование с публичной формы
// Нулевой SlotID означает, что блок не выбран; пустые строки - отсутствующие
// поля. ServiceIDs может содержать дубликаты и несуществующие ID - заявка
// проверяется целиком (все-или-ничего)
type Request struct {
	SlotID      int64
	Name        string
	Phone       string
	Email       string
	CustomNotes string
	ServiceIDs  []int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  int64
	SlotID     int64
	CustomerID int64
	ServiceIDs []int64
	Status     domain.BookingStatus
	CreatedAt  time.Time
}
