package admin_panel

import (
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
)

const msgPanelUnavailable = "Something went wrong. Please try again later."

type Handler struct {
	catalog  CatalogService
	content  ContentService
	renderer Renderer
	logger   Logger
}

func NewHandler(catalog CatalogService, content ContentService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		content:  content,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookings, err := h.content.RecentBookings(ctx)
	if err != nil {
		h.logger.Error("GET /admin - Failed to load bookings: %v", err)
		http.Error(w, msgPanelUnavailable, http.StatusInternalServerError)
		return
	}

	slots, err := h.catalog.ListAllSlots(ctx)
	if err != nil {
		h.logger.Error("GET /admin - Failed to load slots: %v", err)
		http.Error(w, msgPanelUnavailable, http.StatusInternalServerError)
		return
	}

	services, err := h.catalog.ListAllServices(ctx)
	if err != nil {
		h.logger.Error("GET /admin - Failed to load services: %v", err)
		http.Error(w, msgPanelUnavailable, http.StatusInternalServerError)
		return
	}

	posts, err := h.content.AllPosts(ctx)
	if err != nil {
		h.logger.Error("GET /admin - Failed to load posts: %v", err)
		http.Error(w, msgPanelUnavailable, http.StatusInternalServerError)
		return
	}

	data := render.AdminDashboardData{
		Bookings: bookings,
		Slots:    slots,
		Services: services,
		Posts:    posts,
	}
	if err := h.renderer.AdminDashboard(w, http.StatusOK, data); err != nil {
		h.logger.Error("GET /admin - Failed to render page: %v", err)
	}
}
