package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/pkg/dbmetrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountBySlot подсчитывает количество бронирований временного блока
// Считаются ВСЕ бронирования независимо от статуса: место освобождается
// только удалением строки, не сменой статуса
func (r *Repository) CountBySlot(ctx context.Context, slotID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create создает новое бронирование
// Вызывается внутри транзакции создания бронирования: активная транзакция
// передается через контекст (dbmetrics.GetExecutor)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.Status == "" {
		booking.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("slot_id", "customer_id", "custom_notes", "status").
		Values(booking.SlotID, booking.CustomerID, booking.CustomNotes, booking.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// AddServices привязывает услуги к бронированию одним INSERT
// Первичный ключ (booking_id, service_id) исключает дубликаты на уровне схемы
func (r *Repository) AddServices(ctx context.Context, bookingID int64, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return ErrNoServices
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_services").
		Columns("booking_id", "service_id")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(bookingID, serviceID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListServiceIDs получает ID услуг, привязанных к бронированию
func (r *Repository) ListServiceIDs(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("service_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// ListRecentWithDetails получает последние бронирования с данными блока и
// клиента (для админ-панели)
func (r *Repository) ListRecentWithDetails(ctx context.Context, limit int) ([]*domain.AdminBookingRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.status",
		"b.custom_notes",
		"b.created_at",
		"s.start_at",
		"s.end_at",
		"c.name",
		"c.phone",
		"c.email",
	).
		From("bookings b").
		Join("availability_slots s ON b.slot_id = s.id").
		Join("customers c ON b.customer_id = c.id").
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentWithDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.AdminBookingRow, 0)
	for rows.Next() {
		var row domain.AdminBookingRow
		err := rows.Scan(
			&row.ID,
			&row.Status,
			&row.CustomNotes,
			&row.CreatedAt,
			&row.SlotStartAt,
			&row.SlotEndAt,
			&row.CustomerName,
			&row.CustomerPhone,
			&row.CustomerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecentWithDetails - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecentWithDetails - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
