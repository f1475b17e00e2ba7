package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	slotRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/slot"
	"github.com/dvbeauty/DVB-BookingService/internal/service/customers"
)

// Сообщения, формируемые внутри транзакции
// MsgSlotUnavailable и MsgSlotFull использует и HTTP-слой
const (
	MsgSlotUnavailable    = "Time block not found."
	MsgSlotFull           = "This time block is full. Please choose another one."
	msgServiceUnavailable = "One or more selected services are unavailable."
)

// UseCase сценарий создания бронирования
// Структурная валидация выполняется до транзакции; проверка блока,
// вместимости, услуг и идентификация клиента - внутри одной
// сериализуемой транзакции, чтобы исключить гонку между проверкой
// вместимости и вставкой
type UseCase struct {
	slots     SlotRepository
	bookings  BookingRepository
	services  ServiceRepository
	resolver  CustomerResolver
	txManager TransactionManager
	logger    Logger
}

// New создает новый экземпляр usecase создания бронирования
func New(
	slots SlotRepository,
	bookings BookingRepository,
	services ServiceRepository,
	resolver CustomerResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:     slots,
		bookings:  bookings,
		services:  services,
		resolver:  resolver,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute обрабатывает заявку на бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if vErr := validateRequest(req); vErr != nil {
		uc.logger.Warn("Execute: invalid submission: %v", vErr)
		return nil, vErr
	}

	serviceIDs := dedupeServiceIDs(req.ServiceIDs)

	var resp *Response
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Строка блока блокируется (FOR UPDATE) до подсчета занятости,
		// конкурентные заявки на тот же блок выстраиваются в очередь
		slot, err := uc.slots.GetByID(txCtx, req.SlotID)
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Execute - get slot id=%d: %v", ErrInternal, req.SlotID, err)
		}

		count, err := uc.bookings.CountBySlot(txCtx, slot.ID)
		if err != nil {
			return fmt.Errorf("%w: Execute - count bookings slot_id=%d: %v", ErrInternal, slot.ID, err)
		}
		if !slot.HasCapacity(count) {
			return ErrSlotFull
		}

		active, err := uc.services.GetActiveByIDs(txCtx, serviceIDs)
		if err != nil {
			return fmt.Errorf("%w: Execute - get services: %v", ErrInternal, err)
		}
		// Все-или-ничего: хотя бы одна неизвестная или отключенная
		// услуга отклоняет заявку целиком
		if len(active) != len(serviceIDs) {
			return NewValidationError(msgServiceUnavailable)
		}

		customer, err := uc.resolver.Resolve(txCtx, customers.ResolveInput{
			Name:        strings.TrimSpace(req.Name),
			Phone:       strings.TrimSpace(req.Phone),
			Email:       strings.TrimSpace(req.Email),
			CustomNotes: strings.TrimSpace(req.CustomNotes),
		})
		if err != nil {
			return fmt.Errorf("%w: Execute - resolve customer: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			SlotID:     slot.ID,
			CustomerID: customer.ID,
			Status:     domain.StatusConfirmed,
		}
		if notes := strings.TrimSpace(req.CustomNotes); notes != "" {
			booking.CustomNotes = &notes
		}

		created, err := uc.bookings.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}

		if err := uc.bookings.AddServices(txCtx, created.ID, serviceIDs); err != nil {
			return fmt.Errorf("%w: Execute - add services booking_id=%d: %v", ErrInternal, created.ID, err)
		}

		resp = &Response{
			BookingID:  created.ID,
			SlotID:     created.SlotID,
			CustomerID: created.CustomerID,
			ServiceIDs: serviceIDs,
			Status:     created.Status,
			CreatedAt:  created.CreatedAt,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("Execute: slot id=%d not found", req.SlotID)
		case errors.Is(err, ErrSlotFull):
			uc.logger.Info("Execute: slot id=%d is full", req.SlotID)
		case errors.Is(err, ErrValidation):
			uc.logger.Warn("Execute: rejected in transaction: %v", err)
		default:
			uc.logger.Error("Execute: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("Execute: booking id=%d created for slot id=%d customer id=%d",
		resp.BookingID, resp.SlotID, resp.CustomerID)
	return resp, nil
}
