package repository

import (
	"context"
	"time"

	"urlite/internal/domain"
)

// LinkRepository defines data access for short links.
// Implementations must enforce short-code uniqueness with a storage-level
// unique constraint; the allocator's existence check is only an optimization.
type LinkRepository interface {
	// Create inserts a new link and fills in the generated ID.
	// A unique-constraint violation on short_code surfaces as
	// domain.ErrAliasTaken so concurrent allocators get a clean conflict.
	Create(ctx context.Context, link *domain.Link) error

	// GetByShortCode retrieves a link by its short code, exact match.
	GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error)

	// GetByID retrieves a link by its UUID.
	GetByID(ctx context.Context, id string) (*domain.Link, error)

	// ListByOwner returns all links created by a user, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Link, error)

	// UpdateTitle changes the link's title. Nil clears it.
	UpdateTitle(ctx context.Context, id string, title *string) error

	// Delete removes a link; associated clicks cascade at the storage layer.
	Delete(ctx context.Context, id string) error

	// IncrementClicks bumps the click counter atomically in the database.
	IncrementClicks(ctx context.Context, shortCode string) error

	// ExistsShortCode checks if a short code is already allocated.
	ExistsShortCode(ctx context.Context, shortCode string) (bool, error)
}

// ClickRepository defines data access for click analytics.
type ClickRepository interface {
	// Create appends one click event.
	Create(ctx context.Context, click *domain.Click) error

	// Summary returns total clicks, unique visitors and recent activity.
	Summary(ctx context.Context, linkID string, now time.Time) (*domain.ClickSummary, error)

	// Timeline returns per-day click counts since the given time.
	// Days without clicks are absent; the service zero-fills them.
	Timeline(ctx context.Context, linkID string, since time.Time) ([]domain.TimelinePoint, error)

	// TopReferrers returns the most common referrers, descending.
	TopReferrers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error)

	// Devices returns click counts grouped by device category.
	Devices(ctx context.Context, linkID string) ([]domain.BucketCount, error)

	// TopCountries returns the most common countries, descending.
	TopCountries(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error)

	// TopBrowsers returns the most common browsers, descending.
	TopBrowsers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error)
}

// UserRepository defines data access for accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID.
	// A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email, exact match.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by its UUID.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
