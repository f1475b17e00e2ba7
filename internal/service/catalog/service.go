package catalog

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/pkg/ptr"
)

// Service сервис каталога: услуги и временные блоки
type Service struct {
	serviceRepo  ServiceRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateSlotRequest запрос на создание временного блока
type CreateSlotRequest struct {
	StartAt     time.Time
	EndAt       time.Time
	Label       string
	MaxBookings int
}

// CreateServiceRequest запрос на создание услуги
// Цена принимается в долларах (как вводит администратор) и хранится в центах
type CreateServiceRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	PriceDollars    float64
}

// ListActiveServices получает активные услуги для публичной страницы
func (s *Service) ListActiveServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActiveServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// ListAllServices получает все услуги для админ-панели
func (s *Service) ListAllServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAllServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// ListUpcomingSlots получает блоки для публичной страницы
// Блоки, начавшиеся менее domain.SlotLookback назад, еще показываются
func (s *Service) ListUpcomingSlots(ctx context.Context) ([]*domain.SlotWithCount, error) {
	from := s.timeProvider.Now().Add(-domain.SlotLookback)
	slots, err := s.slotRepo.ListUpcoming(ctx, from, domain.HomeSlotsLimit)
	if err != nil {
		s.logger.Error("ListUpcomingSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcomingSlots - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// ListAllSlots получает все блоки для админ-панели
func (s *Service) ListAllSlots(ctx context.Context) ([]*domain.AvailabilitySlot, error) {
	slots, err := s.slotRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAllSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllSlots - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// CreateSlot создает новый временной блок (админ-операция, без логики
// аллокации - обычный insert)
func (s *Service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*domain.AvailabilitySlot, error) {
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	if !req.EndAt.After(req.StartAt) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	maxBookings := req.MaxBookings
	if maxBookings <= 0 {
		maxBookings = domain.DefaultMaxBookings
	}

	var label *string
	if req.Label != "" {
		label = ptr.Ptr(req.Label)
	}

	slot, err := s.slotRepo.Create(ctx, &domain.AvailabilitySlot{
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Label:       label,
		MaxBookings: maxBookings,
		Status:      domain.SlotStatusOpen,
	})
	if err != nil {
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: created slot id=%d, start=%s, max_bookings=%d",
		slot.ID, slot.StartAt.Format(time.RFC3339), slot.MaxBookings)
	return slot, nil
}

// CreateService создает новую услугу (админ-операция)
func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}

	var description *string
	if req.Description != "" {
		description = ptr.Ptr(req.Description)
	}

	svc, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            req.Name,
		Description:     description,
		DurationMinutes: duration,
		PriceCents:      DollarsToCents(req.PriceDollars),
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d, name=%s", svc.ID, svc.Name)
	return svc, nil
}

// DollarsToCents конвертирует цену в долларах в центы с округлением
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
