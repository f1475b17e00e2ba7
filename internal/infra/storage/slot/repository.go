package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/pkg/dbmetrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с временными блоками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория временных блоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый временной блок
func (r *Repository) Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if slot.MaxBookings <= 0 {
		slot.MaxBookings = domain.DefaultMaxBookings
	}
	if slot.Status == "" {
		slot.Status = domain.SlotStatusOpen
	}

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns("start_at", "end_at", "label", "max_bookings", "status").
		Values(slot.StartAt, slot.EndAt, slot.Label, slot.MaxBookings, slot.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID получает временной блок по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентные
// бронирования одного блока сериализовались на проверке вместимости
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "start_at", "end_at", "label", "max_bookings", "status").
		From("availability_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.AvailabilitySlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.StartAt,
		&slot.EndAt,
		&slot.Label,
		&slot.MaxBookings,
		&slot.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// ListUpcoming получает временные блоки, начинающиеся не раньше from,
// вместе с количеством бронирований на каждый (для публичной страницы)
func (r *Repository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.SlotWithCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.start_at",
		"s.end_at",
		"s.label",
		"s.max_bookings",
		"s.status",
		"COUNT(b.id) AS booking_count",
	).
		From("availability_slots s").
		LeftJoin("bookings b ON b.slot_id = s.id").
		Where(squirrel.GtOrEq{"s.start_at": from}).
		GroupBy("s.id").
		OrderBy("s.start_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotsWithCount(rows)
}

// ListAll получает все временные блоки в порядке начала (для админ-панели)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_at", "end_at", "label", "max_bookings", "status").
		From("availability_slots").
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		err := rows.Scan(&slot.ID, &slot.StartAt, &slot.EndAt, &slot.Label, &slot.MaxBookings, &slot.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func (r *Repository) scanSlotsWithCount(rows *sql.Rows) ([]*domain.SlotWithCount, error) {
	slots := make([]*domain.SlotWithCount, 0)
	for rows.Next() {
		var slot domain.SlotWithCount
		err := rows.Scan(
			&slot.ID,
			&slot.StartAt,
			&slot.EndAt,
			&slot.Label,
			&slot.MaxBookings,
			&slot.Status,
			&slot.BookingCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotsWithCount - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotsWithCount - rows error: %v", ErrScanRow, err)
	}
	return slots, nil
}
