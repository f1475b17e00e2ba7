package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент по контактам не найден
	ErrCustomerNotFound = errors.New("customers: customer not found")

	// ErrMissingContact возвращается, когда не указан ни телефон, ни email
	ErrMissingContact = errors.New("customers: phone or email required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers: internal error")
)
