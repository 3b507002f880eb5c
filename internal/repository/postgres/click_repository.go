package postgres

import (
	"context"
	"fmt"
	"time"

	"urlite/internal/domain"
	"urlite/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// clickRepository is the PostgreSQL implementation of repository.ClickRepository
type clickRepository struct {
	db *pgxpool.Pool
}

// NewClickRepository creates a new PostgreSQL click repository
func NewClickRepository(db *pgxpool.Pool) repository.ClickRepository {
	return &clickRepository{db: db}
}

// Create appends one click event
func (r *clickRepository) Create(ctx context.Context, click *domain.Click) error {
	query := `
		INSERT INTO clicks (
			link_id, clicked_at, referrer, ip_address,
			country, city, device, browser, os, user_agent
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		click.LinkID,
		click.ClickedAt,
		click.Referrer,
		click.IPAddress,
		click.Country,
		click.City,
		click.Device,
		click.Browser,
		click.OS,
		click.UserAgent,
	).Scan(&click.ID)

	if err != nil {
		return fmt.Errorf("failed to create click event: %w", err)
	}

	return nil
}

// Summary returns total clicks, unique visitors and recent activity counts
// in a single aggregate query.
func (r *clickRepository) Summary(ctx context.Context, linkID string, now time.Time) (*domain.ClickSummary, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	query := `
		SELECT COUNT(*),
		       COUNT(DISTINCT ip_address) FILTER (WHERE ip_address <> ''),
		       COUNT(*) FILTER (WHERE clicked_at >= $2),
		       COUNT(*) FILTER (WHERE clicked_at >= $3)
		FROM clicks
		WHERE link_id = $1
	`

	summary := &domain.ClickSummary{}
	err := r.db.QueryRow(ctx, query, linkID, today, weekAgo).Scan(
		&summary.TotalClicks,
		&summary.UniqueVisitors,
		&summary.ClicksToday,
		&summary.ClicksThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get click summary: %w", err)
	}

	return summary, nil
}

// Timeline returns per-day click counts since the given time
func (r *clickRepository) Timeline(ctx context.Context, linkID string, since time.Time) ([]domain.TimelinePoint, error) {
	query := `
		SELECT TO_CHAR(clicked_at, 'YYYY-MM-DD') AS day,
		       COUNT(*)
		FROM clicks
		WHERE link_id = $1 AND clicked_at >= $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, linkID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	defer rows.Close()

	var points []domain.TimelinePoint
	for rows.Next() {
		var p domain.TimelinePoint
		if err := rows.Scan(&p.Date, &p.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan timeline point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline: %w", err)
	}

	return points, nil
}

// TopReferrers returns the most common referrers, descending
func (r *clickRepository) TopReferrers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.countByColumn(ctx, "referrer", linkID, limit)
}

// Devices returns click counts grouped by device category
func (r *clickRepository) Devices(ctx context.Context, linkID string) ([]domain.BucketCount, error) {
	return r.countByColumn(ctx, "device", linkID, 0)
}

// TopCountries returns the most common countries, descending
func (r *clickRepository) TopCountries(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.countByColumn(ctx, "country", linkID, limit)
}

// TopBrowsers returns the most common browsers, descending
func (r *clickRepository) TopBrowsers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.countByColumn(ctx, "browser", linkID, limit)
}

// countByColumn runs a GROUP BY aggregation over one of the classification
// columns. The column name is supplied only by the exported wrappers above,
// never from request input.
func (r *clickRepository) countByColumn(ctx context.Context, column, linkID string, limit int) ([]domain.BucketCount, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM clicks
		WHERE link_id = $1
		GROUP BY %s
		ORDER BY COUNT(*) DESC
	`, column, column)

	args := []any{linkID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by %s: %w", column, err)
	}
	defer rows.Close()

	var buckets []domain.BucketCount
	for rows.Next() {
		var b domain.BucketCount
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s bucket: %w", column, err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s buckets: %w", column, err)
	}

	return buckets, nil
}
