package gallery

import (
	"context"
	"fmt"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/pkg/dbmetrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с галереей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория галереи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет изображение в галерею
func (r *Repository) Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if img.Source == "" {
		img.Source = domain.SourceUpload
	}

	query, args, err := psqlbuilder.Insert("gallery_images").
		Columns("title", "image_url", "source").
		Values(img.Title, img.ImageURL, img.Source).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

// ListRecent получает последние изображения галереи
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "image_url", "source", "created_at").
		From("gallery_images").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.Title, &img.ImageURL, &img.Source, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}
