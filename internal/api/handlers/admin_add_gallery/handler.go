package admin_add_gallery

import (
	"errors"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
)

const (
	msgInvalidImage = "Image URL is required."
	msgAddFailed    = "Could not add gallery image."
)

type Handler struct {
	content ContentService
	logger  Logger
}

func NewHandler(contentSvc ContentService, logger Logger) *Handler {
	return &Handler{
		content: contentSvc,
		logger:  logger,
	}
}

// Handle POST /admin/gallery/instagram
// Принимает внешнюю ссылку на изображение; загрузка файлов не входит
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/gallery/instagram - Invalid form: %v", err)
		http.Error(w, msgInvalidImage, http.StatusBadRequest)
		return
	}

	img, err := h.content.AddInstagramImage(
		r.Context(),
		r.PostForm.Get("title"),
		r.PostForm.Get("imageUrl"),
	)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("POST /admin/gallery/instagram - Invalid input: %v", err)
			http.Error(w, msgInvalidImage, http.StatusBadRequest)

		default:
			h.logger.Error("POST /admin/gallery/instagram - Failed to add image: %v", err)
			http.Error(w, msgAddFailed, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("POST /admin/gallery/instagram - Image added: image_id=%d", img.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
