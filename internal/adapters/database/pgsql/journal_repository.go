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

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for journal data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

const journalColumns = `journal_id, title, description, is_public, created_at, updated_at, user_id`

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var journal domain.Journal
	err := row.Scan(
		&journal.JournalID,
		&journal.Title,
		&journal.Description,
		&journal.IsPublic,
		&journal.CreatedAt,
		&journal.UpdatedAt,
		&journal.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &journal, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	journal, err := scanJournal(r.pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %d: %w", journalID, err)
	}
	return journal, nil
}

func (r *PgxJournalRepository) FindJournalsByUser(ctx context.Context, userID int64) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for user %d: %w", userID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row for user %d: %w", userID, err)
		}
		journals = append(journals, *journal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows for user %d: %w", userID, err)
	}
	return journals, nil
}

func (r *PgxJournalRepository) FindAllJournals(ctx context.Context, includeEntries bool) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals ORDER BY journal_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *journal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	if !includeEntries {
		return journals, nil
	}

	for i := range journals {
		entries, err := r.findEntriesForJournal(ctx, journals[i].JournalID)
		if err != nil {
			return nil, err
		}
		journals[i].Entries = entries
	}
	return journals, nil
}

func (r *PgxJournalRepository) findEntriesForJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	query := `
		SELECT entry_id, title, content, location, latitude, longitude, created_at, updated_at, journal_id, user_id, is_deleted
		FROM entries
		WHERE journal_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(
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
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry row for journal %d: %w", journalID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for journal %d: %w", journalID, err)
	}
	return entries, nil
}

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal *domain.Journal) error {
	query := `
		INSERT INTO journals (title, description, is_public, created_at, updated_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING journal_id;
	`
	err := r.pool.QueryRow(ctx, query,
		journal.Title,
		journal.Description,
		journal.IsPublic,
		journal.CreatedAt,
		journal.UpdatedAt,
		journal.UserID,
	).Scan(&journal.JournalID)
	if err != nil {
		return fmt.Errorf("failed to insert journal for user %d: %w", journal.UserID, err)
	}
	return nil
}

func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	query := `
		UPDATE journals
		SET title = $2, description = $3, is_public = $4, updated_at = $5
		WHERE journal_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		journal.JournalID,
		journal.Title,
		journal.Description,
		journal.IsPublic,
		journal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %d: %w", journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteJournalCascade removes the journal and everything hanging off it in a
// single database transaction so a failure partway through leaves no partial
// cascade behind.
func (r *PgxJournalRepository) DeleteJournalCascade(ctx context.Context, journalID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM photos WHERE entry_id IN (SELECT entry_id FROM entries WHERE journal_id = $1);`, journalID); err != nil {
		return fmt.Errorf("failed to delete photos for journal %d: %w", journalID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM media WHERE entry_id IN (SELECT entry_id FROM entries WHERE journal_id = $1);`, journalID); err != nil {
		return fmt.Errorf("failed to delete media for journal %d: %w", journalID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE journal_id = $1;`, journalID); err != nil {
		return fmt.Errorf("failed to delete entries for journal %d: %w", journalID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete journal %d: %w", journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cascade delete for journal %d: %w", journalID, err)
	}
	return nil
}
