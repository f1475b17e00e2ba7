package admin_create_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dvbeauty/DVB-BookingService/internal/service/catalog"
)

const (
	msgInvalidService = "Invalid service."
	msgCreateFailed   = "Could not create service."
)

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

// Handle POST /admin/services
// Цена приходит в долларах, сервис конвертирует в центы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/services - Invalid form: %v", err)
		http.Error(w, msgInvalidService, http.StatusBadRequest)
		return
	}

	duration, _ := strconv.Atoi(r.PostForm.Get("durationMinutes"))
	price, _ := strconv.ParseFloat(r.PostForm.Get("priceDollars"), 64)

	svc, err := h.catalog.CreateService(r.Context(), catalog.CreateServiceRequest{
		Name:            r.PostForm.Get("name"),
		Description:     r.PostForm.Get("description"),
		DurationMinutes: duration,
		PriceDollars:    price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			http.Error(w, msgInvalidService, http.StatusBadRequest)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: %v", err)
			http.Error(w, msgCreateFailed, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d, name=%s", svc.ID, svc.Name)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
