package postgres

import (
	"context"
	"errors"
	"fmt"

	"urlite/internal/domain"
	"urlite/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint failures
const uniqueViolation = "23505"

// linkRepository is the PostgreSQL implementation of repository.LinkRepository
type linkRepository struct {
	db *pgxpool.Pool
}

// NewLinkRepository creates a new PostgreSQL link repository
func NewLinkRepository(db *pgxpool.Pool) repository.LinkRepository {
	return &linkRepository{db: db}
}

// Create inserts a new link into the database
func (r *linkRepository) Create(ctx context.Context, link *domain.Link) error {
	query := `
		INSERT INTO links (
			short_code, original_url, title, is_custom, owner_id, clicks, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		link.ShortCode,
		link.OriginalURL,
		link.Title,   // nil -> NULL
		link.IsCustom,
		link.OwnerID, // nil -> NULL
		link.Clicks,
		link.CreatedAt,
	).Scan(&link.ID)

	if err != nil {
		// The losing side of a concurrent insert of the same code gets a
		// conflict, not a 500. The pre-insert existence check is not
		// transactionally coupled to this insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAliasTaken
		}
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

// GetByShortCode retrieves a link by its short code
func (r *linkRepository) GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	query := `
		SELECT id, short_code, original_url, title, is_custom, owner_id, clicks, created_at
		FROM links
		WHERE short_code = $1
	`

	return r.scanLink(r.db.QueryRow(ctx, query, shortCode))
}

// GetByID retrieves a link by its UUID
func (r *linkRepository) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	query := `
		SELECT id, short_code, original_url, title, is_custom, owner_id, clicks, created_at
		FROM links
		WHERE id = $1
	`

	return r.scanLink(r.db.QueryRow(ctx, query, id))
}

// ListByOwner returns all links created by a user, newest first
func (r *linkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Link, error) {
	query := `
		SELECT id, short_code, original_url, title, is_custom, owner_id, clicks, created_at
		FROM links
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	var links []*domain.Link
	for rows.Next() {
		link := &domain.Link{}
		err := rows.Scan(
			&link.ID,
			&link.ShortCode,
			&link.OriginalURL,
			&link.Title,
			&link.IsCustom,
			&link.OwnerID,
			&link.Clicks,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}

	return links, nil
}

// UpdateTitle changes a link's title
func (r *linkRepository) UpdateTitle(ctx context.Context, id string, title *string) error {
	query := `UPDATE links SET title = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a link. Click events cascade via the foreign key.
func (r *linkRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM links WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// IncrementClicks atomically increases the click counter.
// A single UPDATE so concurrent redirects of the same code never lose counts.
func (r *linkRepository) IncrementClicks(ctx context.Context, shortCode string) error {
	query := `
		UPDATE links
		SET clicks = clicks + 1
		WHERE short_code = $1
	`

	result, err := r.db.Exec(ctx, query, shortCode)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ExistsShortCode checks if a short code is already allocated
func (r *linkRepository) ExistsShortCode(ctx context.Context, shortCode string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM links WHERE short_code = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, shortCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check short code existence: %w", err)
	}

	return exists, nil
}

func (r *linkRepository) scanLink(row pgx.Row) (*domain.Link, error) {
	link := &domain.Link{}
	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.Title, // pgx handles NULL -> nil
		&link.IsCustom,
		&link.OwnerID,
		&link.Clicks,
		&link.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}
