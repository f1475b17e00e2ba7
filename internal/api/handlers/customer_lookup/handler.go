package customer_lookup

import (
	"errors"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/handlers"
	lookupUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/lookup_customer"
)

const msgMissingContact = "phone or email required"

type Handler struct {
	usecase LookupUseCase
	logger  Logger
}

func NewHandler(usecase LookupUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/customer-lookup?phone=...&email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &lookupUC.Request{
		Phone: query.Get("phone"),
		Email: query.Get("email"),
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, lookupUC.ErrMissingContact):
			h.logger.Warn("GET /api/customer-lookup - Missing contact")
			handlers.RespondBadRequest(w, msgMissingContact)

		default:
			h.logger.Error("GET /api/customer-lookup - Lookup failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	body := LookupResponse{Found: resp.Found}
	if resp.Found {
		body.Profile = &Profile{Name: resp.Name}
	}
	handlers.RespondJSON(w, http.StatusOK, body)
}
