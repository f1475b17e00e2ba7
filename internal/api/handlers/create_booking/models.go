package create_booking

import (
	"net/url"
	"strconv"

	bookingUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/create_booking"
)

// parseForm конвертирует форму записи в запрос usecase
// Непарсибельные числа превращаются в 0: слот с ID 0 не существует и
// проваливает валидацию, услуга с ID 0 проваливает проверку все-или-ничего
func parseForm(form url.Values) *bookingUC.Request {
	slotID, _ := strconv.ParseInt(form.Get("slotId"), 10, 64)

	rawServices := form["services"]
	serviceIDs := make([]int64, 0, len(rawServices))
	for _, raw := range rawServices {
		id, _ := strconv.ParseInt(raw, 10, 64)
		serviceIDs = append(serviceIDs, id)
	}

	return &bookingUC.Request{
		SlotID:      slotID,
		Name:        form.Get("name"),
		Phone:       form.Get("phone"),
		Email:       form.Get("email"),
		CustomNotes: form.Get("customNotes"),
		ServiceIDs:  serviceIDs,
	}
}
