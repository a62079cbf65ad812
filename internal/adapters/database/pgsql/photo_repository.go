package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
)

type PgxPhotoRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPhotoRepository creates a new repository for photo records.
func NewPgxPhotoRepository(pool *pgxpool.Pool) portsrepo.PhotoRepositoryFacade {
	return &PgxPhotoRepository{pool: pool}
}

func (r *PgxPhotoRepository) FindPhotoByID(ctx context.Context, photoID int64) (*domain.Photo, error) {
	query := `SELECT photo_id, file_path, entry_id FROM photos WHERE photo_id = $1;`
	var photo domain.Photo
	err := r.pool.QueryRow(ctx, query, photoID).Scan(&photo.PhotoID, &photo.FilePath, &photo.EntryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find photo by ID %d: %w", photoID, err)
	}
	return &photo, nil
}

func (r *PgxPhotoRepository) FindPhotosByEntry(ctx context.Context, entryID int64) ([]domain.Photo, error) {
	query := `SELECT photo_id, file_path, entry_id FROM photos WHERE entry_id = $1 ORDER BY photo_id;`
	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos for entry %d: %w", entryID, err)
	}
	defer rows.Close()

	photos := []domain.Photo{}
	for rows.Next() {
		var photo domain.Photo
		if err := rows.Scan(&photo.PhotoID, &photo.FilePath, &photo.EntryID); err != nil {
			return nil, fmt.Errorf("failed to scan photo row for entry %d: %w", entryID, err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows for entry %d: %w", entryID, err)
	}
	return photos, nil
}

func (r *PgxPhotoRepository) SavePhoto(ctx context.Context, photo *domain.Photo) error {
	query := `INSERT INTO photos (file_path, entry_id) VALUES ($1, $2) RETURNING photo_id;`
	err := r.pool.QueryRow(ctx, query, photo.FilePath, photo.EntryID).Scan(&photo.PhotoID)
	if err != nil {
		return fmt.Errorf("failed to insert photo for entry %d: %w", photo.EntryID, err)
	}
	return nil
}

func (r *PgxPhotoRepository) DeletePhoto(ctx context.Context, photoID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE photo_id = $1;`, photoID)
	if err != nil {
		return fmt.Errorf("failed to delete photo %d: %w", photoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
