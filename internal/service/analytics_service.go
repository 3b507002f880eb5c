package service

import (
	"context"
	"time"

	"urlite/internal/domain"
	"urlite/internal/repository"
)

// topLimit caps the referrer/country/browser breakdowns
const topLimit = 10

// AnalyticsService answers dashboard queries over recorded clicks.
// Every query is owner-scoped: callers can only see analytics for links
// they own. Aggregation itself is delegated to the database.
type AnalyticsService struct {
	links  repository.LinkRepository
	clicks repository.ClickRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(links repository.LinkRepository, clicks repository.ClickRepository) *AnalyticsService {
	return &AnalyticsService{
		links:  links,
		clicks: clicks,
	}
}

// Summary returns headline figures for one link
func (s *AnalyticsService) Summary(ctx context.Context, linkID, userID string) (*domain.ClickSummary, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}
	return s.clicks.Summary(ctx, linkID, time.Now())
}

// Timeline returns per-day click counts for the last N days,
// zero-filling days without any clicks.
func (s *AnalyticsService) Timeline(ctx context.Context, linkID, userID string, days int) ([]domain.TimelinePoint, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = 7
	}

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -days)

	points, err := s.clicks.Timeline(ctx, linkID, since)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(points))
	for _, p := range points {
		counts[p.Date] = p.Clicks
	}

	filled := make([]domain.TimelinePoint, 0, days+1)
	for d := since; !d.After(now); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		filled = append(filled, domain.TimelinePoint{Date: date, Clicks: counts[date]})
	}

	return filled, nil
}

// Referrers returns the top referrers for one link
func (s *AnalyticsService) Referrers(ctx context.Context, linkID, userID string) ([]domain.BucketCount, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}
	return s.clicks.TopReferrers(ctx, linkID, topLimit)
}

// Devices returns the device breakdown for one link
func (s *AnalyticsService) Devices(ctx context.Context, linkID, userID string) ([]domain.BucketCount, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}
	return s.clicks.Devices(ctx, linkID)
}

// Locations returns the top countries for one link
func (s *AnalyticsService) Locations(ctx context.Context, linkID, userID string) ([]domain.BucketCount, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}
	return s.clicks.TopCountries(ctx, linkID, topLimit)
}

// Browsers returns the top browsers for one link
func (s *AnalyticsService) Browsers(ctx context.Context, linkID, userID string) ([]domain.BucketCount, error) {
	if err := s.authorize(ctx, linkID, userID); err != nil {
		return nil, err
	}
	return s.clicks.TopBrowsers(ctx, linkID, topLimit)
}

// authorize fails with ErrNotFound for unknown links and ErrNotOwner when
// the caller does not own the link
func (s *AnalyticsService) authorize(ctx context.Context, linkID, userID string) error {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return err
	}
	if !link.OwnedBy(userID) {
		return domain.ErrNotOwner
	}
	return nil
}
