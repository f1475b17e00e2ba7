package render_home

import (
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
)

const msgPageUnavailable = "Something went wrong. Please try again later."

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

// Handle GET /
// ?booked=1 после успешной записи включает сообщение об успехе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	success := r.URL.Query().Get("booked") == "1"
	h.RenderPage(w, r, http.StatusOK, nil, success)
}

// RenderPage собирает данные публичной страницы и рендерит ее
// Используется и обработчиком POST /bookings для показа отклоненной заявки
func (h *Handler) RenderPage(w http.ResponseWriter, r *http.Request, status int, formErrors []string, success bool) {
	ctx := r.Context()

	services, err := h.catalog.ListActiveServices(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to load services: %v", err)
		http.Error(w, msgPageUnavailable, http.StatusInternalServerError)
		return
	}

	slots, err := h.catalog.ListUpcomingSlots(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to load slots: %v", err)
		http.Error(w, msgPageUnavailable, http.StatusInternalServerError)
		return
	}

	gallery, err := h.content.HomeGallery(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to load gallery: %v", err)
		http.Error(w, msgPageUnavailable, http.StatusInternalServerError)
		return
	}

	posts, err := h.content.HomePosts(ctx)
	if err != nil {
		h.logger.Error("GET / - Failed to load posts: %v", err)
		http.Error(w, msgPageUnavailable, http.StatusInternalServerError)
		return
	}

	data := render.HomeData{
		Services: services,
		Slots:    slots,
		Gallery:  gallery,
		Posts:    posts,
		Errors:   formErrors,
		Success:  success,
	}
	if err := h.renderer.Home(w, status, data); err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
	}
}
