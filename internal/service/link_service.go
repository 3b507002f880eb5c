package service

import (
	"context"
	"fmt"
	"log/slog"

	"urlite/internal/domain"
	"urlite/internal/metrics"
	"urlite/internal/repository"
	"urlite/pkg/validator"
)

// maxCodeAttempts bounds the allocator's regenerate loop. Collisions are
// rare (64^6 codes), so hitting the ceiling means something is wrong.
const maxCodeAttempts = 10

// Cache interface for resolved links.
// An interface here keeps the Redis dependency out of the service and makes
// the cache trivially mockable.
type Cache interface {
	GetLink(ctx context.Context, shortCode string) (*domain.Link, error)
	SetLink(ctx context.Context, shortCode string, link *domain.Link) error
	DeleteLink(ctx context.Context, shortCode string) error
}

// LinkService handles business logic for short links: allocation,
// resolution and owner-scoped management.
type LinkService struct {
	links      repository.LinkRepository
	cache      Cache
	logger     *slog.Logger
	codeLength int
}

// NewLinkService creates a new link service
func NewLinkService(links repository.LinkRepository, cache Cache, logger *slog.Logger, codeLength int) *LinkService {
	return &LinkService{
		links:      links,
		cache:      cache,
		logger:     logger,
		codeLength: codeLength,
	}
}

// Create allocates a short code and persists a new link.
// ownerID is nil for anonymous submissions; custom aliases require an owner.
func (s *LinkService) Create(ctx context.Context, originalURL, customAlias, title string, ownerID *string) (*domain.Link, error) {
	if err := validator.ValidateURL(originalURL); err != nil {
		return nil, err
	}

	var shortCode string
	if customAlias != "" {
		if ownerID == nil {
			return nil, domain.ErrLoginRequired
		}
		if err := validator.ValidateCustomAlias(customAlias); err != nil {
			return nil, err
		}
		// Existence check so the common case gets a friendly conflict
		// before the insert. The unique constraint still decides races.
		exists, err := s.links.ExistsShortCode(ctx, customAlias)
		if err != nil {
			return nil, fmt.Errorf("failed to check custom alias: %w", err)
		}
		if exists {
			return nil, domain.ErrAliasTaken
		}
		shortCode = customAlias
	} else {
		var err error
		shortCode, err = s.allocateCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	link := domain.NewLink(originalURL, shortCode).WithTitle(title)
	if customAlias != "" {
		link.MarkCustom()
	}
	if ownerID != nil {
		link.WithOwner(*ownerID)
	}

	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	// Cache failures are not worth failing the create over
	if err := s.cache.SetLink(ctx, shortCode, link); err != nil {
		s.logger.Warn("failed to cache link", "short_code", shortCode, "error", err)
	}

	metrics.RecordLinkCreated()
	return link, nil
}

// Resolve looks up a short code, bumps its click counter and returns the
// link for redirecting. The counter update happens before the caller writes
// the redirect, so a click counts even if the client drops the connection.
// If only the counter update fails, the redirect still goes out.
func (s *LinkService) Resolve(ctx context.Context, shortCode string) (*domain.Link, error) {
	link, err := s.lookup(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	if err := s.links.IncrementClicks(ctx, shortCode); err != nil {
		s.logger.Error("failed to increment clicks", "short_code", shortCode, "error", err)
	} else {
		link.Clicks++
	}

	metrics.RecordRedirect()
	return link, nil
}

// ListByOwner returns a user's links, newest first
func (s *LinkService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Link, error) {
	return s.links.ListByOwner(ctx, ownerID)
}

// Get returns a link if the given user owns it
func (s *LinkService) Get(ctx context.Context, id, userID string) (*domain.Link, error) {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !link.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	return link, nil
}

// GetForQR returns a link for QR rendering. Ownerless legacy links are
// readable by any authenticated caller; owned links only by their owner.
func (s *LinkService) GetForQR(ctx context.Context, id, userID string) (*domain.Link, error) {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link.OwnerID != nil && !link.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	return link, nil
}

// UpdateTitle changes a link's title, owner only. An empty title clears it.
func (s *LinkService) UpdateTitle(ctx context.Context, id, userID, title string) (*domain.Link, error) {
	link, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	var newTitle *string
	if title != "" {
		newTitle = &title
	}

	if err := s.links.UpdateTitle(ctx, id, newTitle); err != nil {
		return nil, err
	}
	link.Title = newTitle

	if err := s.cache.DeleteLink(ctx, link.ShortCode); err != nil {
		s.logger.Warn("failed to evict cached link", "short_code", link.ShortCode, "error", err)
	}

	return link, nil
}

// Delete removes a link and its click events, owner only
func (s *LinkService) Delete(ctx context.Context, id, userID string) error {
	link, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.links.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.DeleteLink(ctx, link.ShortCode); err != nil {
		s.logger.Warn("failed to evict cached link", "short_code", link.ShortCode, "error", err)
	}

	return nil
}

// lookup is the cache-aside read used by the redirect path
func (s *LinkService) lookup(ctx context.Context, shortCode string) (*domain.Link, error) {
	cached, err := s.cache.GetLink(ctx, shortCode)
	if err != nil {
		s.logger.Warn("cache lookup failed", "short_code", shortCode, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	link, err := s.links.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetLink(ctx, shortCode, link); err != nil {
		s.logger.Warn("failed to cache link", "short_code", shortCode, "error", err)
	}

	return link, nil
}

// allocateCode generates candidates until one is free
func (s *LinkService) allocateCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := generateShortCode(s.codeLength)
		if err != nil {
			return "", err
		}

		exists, err := s.links.ExistsShortCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check short code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to allocate a unique short code after %d attempts", maxCodeAttempts)
}
