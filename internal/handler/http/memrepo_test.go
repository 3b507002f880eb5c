package http

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"urlite/internal/domain"
)

// In-memory repository fakes backing the route tests. They mirror the
// contracts of the Postgres implementations closely enough for end-to-end
// request flows without a database.

type memLinkRepo struct {
	mu    sync.Mutex
	links map[string]*domain.Link // by ID
	codes map[string]string       // short code -> ID
	order []string                // insertion order of IDs
}

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{
		links: make(map[string]*domain.Link),
		codes: make(map[string]string),
	}
}

func (r *memLinkRepo) Create(ctx context.Context, link *domain.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.codes[link.ShortCode]; taken {
		return domain.ErrAliasTaken
	}

	link.ID = uuid.New().String()
	copied := *link
	r.links[link.ID] = &copied
	r.codes[link.ShortCode] = link.ID
	r.order = append(r.order, link.ID)
	return nil
}

func (r *memLinkRepo) GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.codes[shortCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r.links[id]
	return &copied, nil
}

func (r *memLinkRepo) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *link
	return &copied, nil
}

func (r *memLinkRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Link
	for i := len(r.order) - 1; i >= 0; i-- {
		link := r.links[r.order[i]]
		if link != nil && link.OwnedBy(ownerID) {
			copied := *link
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memLinkRepo) UpdateTitle(ctx context.Context, id string, title *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[id]
	if !ok {
		return domain.ErrNotFound
	}
	link.Title = title
	return nil
}

func (r *memLinkRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.codes, link.ShortCode)
	delete(r.links, id)
	return nil
}

func (r *memLinkRepo) IncrementClicks(ctx context.Context, shortCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.codes[shortCode]
	if !ok {
		return domain.ErrNotFound
	}
	r.links[id].Clicks++
	return nil
}

func (r *memLinkRepo) ExistsShortCode(ctx context.Context, shortCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.codes[shortCode]
	return ok, nil
}

func (r *memLinkRepo) clicksFor(shortCode string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.codes[shortCode]
	if !ok {
		return 0
	}
	return r.links[id].Clicks
}

type memClickRepo struct {
	mu     sync.Mutex
	clicks []*domain.Click
}

func (r *memClickRepo) Create(ctx context.Context, click *domain.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *click
	r.clicks = append(r.clicks, &copied)
	return nil
}

func (r *memClickRepo) forLink(linkID string) []*domain.Click {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Click
	for _, c := range r.clicks {
		if c.LinkID == linkID {
			out = append(out, c)
		}
	}
	return out
}

func (r *memClickRepo) Summary(ctx context.Context, linkID string, now time.Time) (*domain.ClickSummary, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	summary := &domain.ClickSummary{}
	visitors := make(map[string]bool)
	for _, c := range r.forLink(linkID) {
		summary.TotalClicks++
		visitors[c.IPAddress] = true
		if !c.ClickedAt.Before(midnight) {
			summary.ClicksToday++
		}
		if !c.ClickedAt.Before(weekAgo) {
			summary.ClicksThisWeek++
		}
	}
	summary.UniqueVisitors = int64(len(visitors))
	return summary, nil
}

func (r *memClickRepo) Timeline(ctx context.Context, linkID string, since time.Time) ([]domain.TimelinePoint, error) {
	counts := make(map[string]int64)
	for _, c := range r.forLink(linkID) {
		if c.ClickedAt.Before(since) {
			continue
		}
		counts[c.ClickedAt.Format("2006-01-02")]++
	}

	points := make([]domain.TimelinePoint, 0, len(counts))
	for date, clicks := range counts {
		points = append(points, domain.TimelinePoint{Date: date, Clicks: clicks})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func (r *memClickRepo) bucketBy(linkID string, limit int, key func(*domain.Click) string) []domain.BucketCount {
	counts := make(map[string]int64)
	for _, c := range r.forLink(linkID) {
		counts[key(c)]++
	}

	buckets := make([]domain.BucketCount, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, domain.BucketCount{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}

func (r *memClickRepo) TopReferrers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.bucketBy(linkID, limit, func(c *domain.Click) string { return c.Referrer }), nil
}

func (r *memClickRepo) Devices(ctx context.Context, linkID string) ([]domain.BucketCount, error) {
	return r.bucketBy(linkID, 0, func(c *domain.Click) string { return c.Device }), nil
}

func (r *memClickRepo) TopCountries(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.bucketBy(linkID, limit, func(c *domain.Click) string { return c.Country }), nil
}

func (r *memClickRepo) TopBrowsers(ctx context.Context, linkID string, limit int) ([]domain.BucketCount, error) {
	return r.bucketBy(linkID, limit, func(c *domain.Click) string { return c.Browser }), nil
}

type memUserRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.User
	emails map[string]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:   make(map[string]*domain.User),
		emails: make(map[string]string),
	}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[user.Email]; taken {
		return domain.ErrEmailTaken
	}

	user.ID = uuid.New().String()
	copied := *user
	r.byID[user.ID] = &copied
	r.emails[user.Email] = user.ID
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r.byID[id]
	return &copied, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// noopCache always misses so requests exercise the repository path.
type noopCache struct{}

func (noopCache) GetLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	return nil, nil
}

func (noopCache) SetLink(ctx context.Context, shortCode string, link *domain.Link) error {
	return nil
}

func (noopCache) DeleteLink(ctx context.Context, shortCode string) error {
	return nil
}

// stubGeo resolves every IP to a fixed location
type stubGeo struct {
	country string
	city    string
}

func (s stubGeo) Locate(ctx context.Context, ipAddress string) (string, string) {
	return s.country, s.city
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
