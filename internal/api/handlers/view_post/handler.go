package view_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
)

const (
	msgPostNotFound = "Post not found"
	msgPostFailed   = "Something went wrong. Please try again later."
)

type Handler struct {
	content  ContentService
	renderer Renderer
	logger   Logger
}

func NewHandler(contentSvc ContentService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		content:  contentSvc,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /blog/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /blog/{id} - Invalid post ID: %v", err)
		http.Error(w, msgPostNotFound, http.StatusNotFound)
		return
	}

	post, err := h.content.GetPost(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrPostNotFound):
			h.logger.Warn("GET /blog/{id} - Post not found: post_id=%d", postID)
			http.Error(w, msgPostNotFound, http.StatusNotFound)

		default:
			h.logger.Error("GET /blog/{id} - Failed to load post: post_id=%d, error=%v", postID, err)
			http.Error(w, msgPostFailed, http.StatusInternalServerError)
		}
		return
	}

	if err := h.renderer.Post(w, http.StatusOK, post); err != nil {
		h.logger.Error("GET /blog/{id} - Failed to render post: post_id=%d, error=%v", postID, err)
	}
}
