package post

import "errors"

var (
	// ErrPostNotFound возвращается, когда пост не найден
	ErrPostNotFound = errors.New("post.repository: post not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("post.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("post.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("post.repository: failed to scan row")
)
