package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/pkg/dbmetrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if svc.DurationMinutes <= 0 {
		svc.DurationMinutes = domain.DefaultServiceDurationMinutes
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "description", "duration_minutes", "price_cents", "is_active").
		Values(svc.Name, svc.Description, svc.DurationMinutes, svc.PriceCents, true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	svc.IsActive = true

	return svc, nil
}

// ListActive получает активные услуги (для публичной страницы)
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, psqlbuilder.Select(serviceColumns()...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id DESC"))
}

// ListAll получает все услуги, включая неактивные (для админ-панели)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, psqlbuilder.Select(serviceColumns()...).
		From("services").
		OrderBy("id DESC"))
}

// GetActiveByIDs получает активные услуги по набору ID
// Отсутствующие и неактивные ID просто не попадают в результат - сверка
// количества лежит на вызывающей стороне (все-или-ничего в usecase)
func (r *Repository) GetActiveByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	return r.list(ctx, psqlbuilder.Select(serviceColumns()...).
		From("services").
		Where(squirrel.Eq{"id": ids, "is_active": true}).
		OrderBy("id ASC"))
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.PriceCents,
			&svc.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

func serviceColumns() []string {
	return []string{"id", "name", "description", "duration_minutes", "price_cents", "is_active"}
}
