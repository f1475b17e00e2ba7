package lookup_customer

import "errors"

var (
	// ErrMissingContact возвращается, когда не передан ни телефон, ни email
	ErrMissingContact = errors.New("lookup_customer: phone or email required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("lookup_customer: internal error")
)
