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

type PgxEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxEntryRepository creates a new repository for entry data.
func NewPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{pool: pool}
}

const entryColumns = `entry_id, title, content, location, latitude, longitude, created_at, updated_at, journal_id, user_id, is_deleted`

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var entry domain.Entry
	err := row.Scan(
		&entry.EntryID,
		&entry.Title,
		&entry.Content,
		&entry.Location,
		&entry.Latitude,
		&entry.Longitude,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.JournalID,
		&entry.UserID,
		&entry.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %d: %w", entryID, err)
	}
	return entry, nil
}

func (r *PgxEntryRepository) FindEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE journal_id = $1 AND is_deleted = FALSE ORDER BY created_at;`
	return r.queryEntries(ctx, query, journalID)
}

func (r *PgxEntryRepository) FindDeletedEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE journal_id = $1 AND is_deleted = TRUE ORDER BY created_at;`
	return r.queryEntries(ctx, query, journalID)
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, journalID int64) ([]domain.Entry, error) {
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row for journal %d: %w", journalID, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for journal %d: %w", journalID, err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) CountActiveEntriesByJournal(ctx context.Context, journalID int64) (int, error) {
	query := `SELECT COUNT(*) FROM entries WHERE journal_id = $1 AND is_deleted = FALSE;`
	var count int
	if err := r.pool.QueryRow(ctx, query, journalID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active entries for journal %d: %w", journalID, err)
	}
	return count, nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (title, content, location, latitude, longitude, created_at, updated_at, journal_id, user_id, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING entry_id;
	`
	err := r.pool.QueryRow(ctx, query,
		entry.Title,
		entry.Content,
		entry.Location,
		entry.Latitude,
		entry.Longitude,
		entry.CreatedAt,
		entry.UpdatedAt,
		entry.JournalID,
		entry.UserID,
		entry.IsDeleted,
	).Scan(&entry.EntryID)
	if err != nil {
		return fmt.Errorf("failed to insert entry for journal %d: %w", entry.JournalID, err)
	}
	return nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	query := `
		UPDATE entries
		SET title = $2, content = $3, location = $4, latitude = $5, longitude = $6, updated_at = $7
		WHERE entry_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.Title,
		entry.Content,
		entry.Location,
		entry.Latitude,
		entry.Longitude,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) MarkEntryDeleted(ctx context.Context, entryID int64) error {
	query := `UPDATE entries SET is_deleted = TRUE, updated_at = now() WHERE entry_id = $1;`
	tag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) RestoreEntry(ctx context.Context, entryID int64) error {
	query := `UPDATE entries SET is_deleted = FALSE, updated_at = now() WHERE entry_id = $1;`
	tag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to restore entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
