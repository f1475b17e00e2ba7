package create_comment

import "context"

// ContentService интерфейс сервиса контента
type ContentService interface {
	AddComment(ctx context.Context, postID int64, authorName, authorComment string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
