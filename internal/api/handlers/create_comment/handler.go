package create_comment

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	content ContentService
	logger  Logger
}

func NewHandler(content ContentService, logger Logger) *Handler {
	return &Handler{
		content: content,
		logger:  logger,
	}
}

// Handle POST /posts/{id}/comments
// Форма комментария всегда возвращает на блок блога: неполный комментарий
// молча игнорируется, ошибку видит только лог
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /posts/{id}/comments - Invalid post ID: %v", err)
		http.Redirect(w, r, "/#blog", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /posts/{id}/comments - Invalid form: %v", err)
		http.Redirect(w, r, "/#blog", http.StatusSeeOther)
		return
	}

	authorName := strings.TrimSpace(r.PostForm.Get("authorName"))
	authorComment := strings.TrimSpace(r.PostForm.Get("authorComment"))

	if err := h.content.AddComment(r.Context(), postID, authorName, authorComment); err != nil {
		h.logger.Error("POST /posts/{id}/comments - Failed to add comment: post_id=%d, error=%v", postID, err)
	}

	http.Redirect(w, r, "/#blog", http.StatusSeeOther)
}
