package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается при некорректной или неполной заявке
	ErrValidation = errors.New("create_booking: invalid submission")

	// ErrSlotNotFound возвращается, когда временной блок не найден
	// Трактуется как ошибка валидации: идентификатор блока не разрешился
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotFull возвращается, когда вместимость блока исчерпана
	ErrSlotFull = errors.New("create_booking: slot capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Детали не показываются клиенту, только логируются
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError накапливает все нарушения заявки, чтобы клиент исправил
// их за один заход. Разворачивается в ErrValidation для errors.Is
type ValidationError struct {
	Messages []string
}

// Error возвращает все сообщения одной строкой
func (e *ValidationError) Error() string {
	return "create_booking: " + strings.Join(e.Messages, "; ")
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации с сообщениями
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
