package view_post

import (
	"context"
	"net/http"

	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	GetPost(ctx context.Context, id int64) (*content.PostWithComments, error)
}

// Renderer интерфейс рендеринга страниц
type Renderer interface {
	Post(w http.ResponseWriter, status int, pwc *content.PostWithComments) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
