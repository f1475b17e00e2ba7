package admin_create_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dvbeauty/DVB-BookingService/internal/service/catalog"
)

const (
	msgInvalidSlot  = "Invalid time block."
	msgCreateFailed = "Could not create time block."
)

// Формат datetime-local из админ-формы
const formTimeLayout = "2006-01-02T15:04"

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalogSvc CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalogSvc,
		logger:  logger,
	}
}

// Handle POST /admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid form: %v", err)
		http.Error(w, msgInvalidSlot, http.StatusBadRequest)
		return
	}

	startAt, errStart := parseFormTime(r.PostForm.Get("startAt"))
	endAt, errEnd := parseFormTime(r.PostForm.Get("endAt"))
	if errStart != nil || errEnd != nil {
		h.logger.Warn("POST /admin/slots - Invalid time: start=%v, end=%v", errStart, errEnd)
		http.Error(w, msgInvalidSlot, http.StatusBadRequest)
		return
	}

	maxBookings, _ := strconv.Atoi(r.PostForm.Get("maxBookings"))

	slot, err := h.catalog.CreateSlot(r.Context(), catalog.CreateSlotRequest{
		StartAt:     startAt,
		EndAt:       endAt,
		Label:       r.PostForm.Get("label"),
		MaxBookings: maxBookings,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid input: %v", err)
			http.Error(w, msgInvalidSlot, http.StatusBadRequest)

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: %v", err)
			http.Error(w, msgCreateFailed, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%d", slot.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// parseFormTime принимает и datetime-local, и RFC3339
func parseFormTime(raw string) (time.Time, error) {
	if t, err := time.Parse(formTimeLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
