package admin_create_post

import (
	"errors"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
)

const (
	msgInvalidPost  = "Title and body are required."
	msgCreateFailed = "Could not create post."
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

// Handle POST /admin/posts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/posts - Invalid form: %v", err)
		http.Error(w, msgInvalidPost, http.StatusBadRequest)
		return
	}

	post, err := h.content.CreatePost(
		r.Context(),
		r.PostForm.Get("title"),
		r.PostForm.Get("body"),
		r.PostForm.Get("imageUrl"),
	)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("POST /admin/posts - Invalid input: %v", err)
			http.Error(w, msgInvalidPost, http.StatusBadRequest)

		default:
			h.logger.Error("POST /admin/posts - Failed to create post: %v", err)
			http.Error(w, msgCreateFailed, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("POST /admin/posts - Post created: post_id=%d", post.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
