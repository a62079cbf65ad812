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

type PgxMediaRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMediaRepository creates a new repository for media metadata.
func NewPgxMediaRepository(pool *pgxpool.Pool) portsrepo.MediaRepositoryFacade {
	return &PgxMediaRepository{pool: pool}
}

const mediaColumns = `media_id, file_name, file_type, file_size, url, uploaded_at, entry_id`

func scanMedia(row pgx.Row) (*domain.Media, error) {
	var media domain.Media
	err := row.Scan(
		&media.MediaID,
		&media.FileName,
		&media.FileType,
		&media.FileSize,
		&media.URL,
		&media.UploadedAt,
		&media.EntryID,
	)
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *PgxMediaRepository) FindMediaByID(ctx context.Context, mediaID int64) (*domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE media_id = $1;`
	media, err := scanMedia(r.pool.QueryRow(ctx, query, mediaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find media by ID %d: %w", mediaID, err)
	}
	return media, nil
}

func (r *PgxMediaRepository) FindMediaByEntry(ctx context.Context, entryID int64) ([]domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE entry_id = $1 ORDER BY uploaded_at;`
	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query media for entry %d: %w", entryID, err)
	}
	defer rows.Close()

	mediaList := []domain.Media{}
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media row for entry %d: %w", entryID, err)
		}
		mediaList = append(mediaList, *media)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media rows for entry %d: %w", entryID, err)
	}
	return mediaList, nil
}

func (r *PgxMediaRepository) SaveMedia(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (file_name, file_type, file_size, url, uploaded_at, entry_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING media_id;
	`
	err := r.pool.QueryRow(ctx, query,
		media.FileName,
		media.FileType,
		media.FileSize,
		media.URL,
		media.UploadedAt,
		media.EntryID,
	).Scan(&media.MediaID)
	if err != nil {
		return fmt.Errorf("failed to insert media for entry %d: %w", media.EntryID, err)
	}
	return nil
}

func (r *PgxMediaRepository) DeleteMedia(ctx context.Context, mediaID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media WHERE media_id = $1;`, mediaID)
	if err != nil {
		return fmt.Errorf("failed to delete media %d: %w", mediaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
