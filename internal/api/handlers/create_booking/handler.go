package create_booking

import (
	"errors"
	"net/http"

	bookingUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/create_booking"
)

const msgBookingFailed = "Could not complete your booking. Please try again."

type Handler struct {
	usecase BookingUseCase
	home    HomeRenderer
	logger  Logger
}

func NewHandler(usecase BookingUseCase, home HomeRenderer, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		home:    home,
		logger:  logger,
	}
}

// Handle POST /bookings
// Принимает форму записи; отклоненная заявка показывается на той же
// странице со списком сообщений, успешная завершается редиректом,
// чтобы F5 не создавал дубликат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /bookings - Invalid form: %v", err)
		h.home.RenderPage(w, r, http.StatusBadRequest, []string{msgBookingFailed}, false)
		return
	}

	req := parseForm(r.PostForm)

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		var vErr *bookingUC.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Rejected: %v", vErr)
			h.home.RenderPage(w, r, http.StatusBadRequest, vErr.Messages, false)

		case errors.Is(err, bookingUC.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			h.home.RenderPage(w, r, http.StatusBadRequest, []string{bookingUC.MsgSlotUnavailable}, false)

		case errors.Is(err, bookingUC.ErrSlotFull):
			h.logger.Info("POST /bookings - Slot full: slot_id=%d", req.SlotID)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(bookingUC.MsgSlotFull))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			h.home.RenderPage(w, r, http.StatusBadRequest, []string{msgBookingFailed}, false)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, slot_id=%d", resp.BookingID, resp.SlotID)
	http.Redirect(w, r, "/?booked=1", http.StatusSeeOther)
}
