package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	customerRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/customer"
)

// Service сервис идентификации клиентов
//
// Сопоставление нестрогое: ищется самый свежий клиент, у которого совпадает
// телефон ИЛИ email. Бизнес сознательно принимает риск ложного слияния ради
// формы записи без логина и лишних полей. Неоднозначность разрешается
// только свежестью записи - это документированное ограничение, усиление
// ключа (требовать оба поля) меняет наблюдаемое поведение и требует
// продуктового решения.
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// ResolveInput входные данные для поиска-или-создания клиента
// Пустые строки означают отсутствующие поля
type ResolveInput struct {
	Name        string
	Phone       string
	Email       string
	CustomNotes string
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Resolve находит существующего клиента по контактам или создает нового
//
// При совпадении: имя и контакты всегда перезаписываются присланными
// значениями (пустое поле затирает известный канал связи в NULL), заметки
// берутся из customNotes, если они непустые, иначе сохраняются старые
// (семантика customNotes || notes || null). updated_at обновляется всегда.
//
// Вызывается внутри транзакции создания бронирования: executor берется
// из контекста, поэтому неудачное бронирование не оставляет клиента
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.Customer, error) {
	found, err := s.repo.FindByContact(ctx, input.Phone, input.Email)
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("Resolve: failed to find customer: %v", err)
		return nil, fmt.Errorf("%w: Resolve - find customer: %v", ErrInternal, err)
	}

	if found == nil {
		created, err := s.repo.Create(ctx, &domain.Customer{
			Name:  input.Name,
			Phone: nilIfEmpty(input.Phone),
			Email: nilIfEmpty(input.Email),
			Notes: nilIfEmpty(input.CustomNotes),
		})
		if err != nil {
			s.logger.Error("Resolve: failed to create customer: %v", err)
			return nil, fmt.Errorf("%w: Resolve - create customer: %v", ErrInternal, err)
		}
		s.logger.Info("Resolve: created customer id=%d", created.ID)
		return created, nil
	}

	found.Name = input.Name
	found.Phone = nilIfEmpty(input.Phone)
	found.Email = nilIfEmpty(input.Email)
	found.Notes = mergeNotes(input.CustomNotes, found.Notes)

	if err := s.repo.Update(ctx, found); err != nil {
		s.logger.Error("Resolve: failed to update customer id=%d: %v", found.ID, err)
		return nil, fmt.Errorf("%w: Resolve - update customer: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: matched existing customer id=%d", found.ID)
	return found, nil
}

// Lookup ищет клиента по контактам без каких-либо изменений (read-only)
// Используется эндпоинтом автоподстановки имени на форме записи
func (s *Service) Lookup(ctx context.Context, phone, email string) (*domain.Customer, error) {
	if phone == "" && email == "" {
		return nil, ErrMissingContact
	}

	found, err := s.repo.FindByContact(ctx, phone, email)
	if errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		s.logger.Error("Lookup: failed to find customer: %v", err)
		return nil, fmt.Errorf("%w: Lookup - find customer: %v", ErrInternal, err)
	}

	return found, nil
}

// mergeNotes реализует семантику customNotes || notes || null:
// свежие непустые заметки заменяют сохраненные, пустые - не затирают
func mergeNotes(customNotes string, existing *string) *string {
	if customNotes != "" {
		return &customNotes
	}
	return existing
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
