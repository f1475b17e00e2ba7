package lookup_customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dvbeauty/DVB-BookingService/internal/service/customers"
)

// UseCase сценарий автоподстановки имени на форме записи
type UseCase struct {
	finder CustomerFinder
	logger Logger
}

// New создает новый экземпляр usecase поиска клиента
func New(finder CustomerFinder, logger Logger) *UseCase {
	return &UseCase{finder: finder, logger: logger}
}

// Execute ищет клиента по телефону или email
// Ненайденный клиент - не ошибка, а Found=false: форма просто ничего
// не подставляет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	phone := strings.TrimSpace(req.Phone)
	email := strings.TrimSpace(req.Email)
	if phone == "" && email == "" {
		return nil, ErrMissingContact
	}

	customer, err := uc.finder.Lookup(ctx, phone, email)
	if errors.Is(err, customers.ErrCustomerNotFound) {
		return &Response{Found: false}, nil
	}
	if errors.Is(err, customers.ErrMissingContact) {
		return nil, ErrMissingContact
	}
	if err != nil {
		uc.logger.Error("Execute: lookup failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - lookup: %v", ErrInternal, err)
	}

	return &Response{Found: true, Name: customer.Name}, nil
}
