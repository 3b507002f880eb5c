package domain

import "time"

// Link represents a shortened URL.
// ShortCode is globally unique; the database enforces this with a unique
// constraint, the allocator's existence check only produces friendlier errors.
type Link struct {
	ID          string    // UUID
	ShortCode   string    // e.g. "V1StGX", or a user-chosen alias
	OriginalURL string    // destination, http/https only
	Title       *string   // optional display title (pointer = nullable)
	IsCustom    bool      // true when ShortCode is a user-supplied alias
	OwnerID     *string   // nil for anonymous submissions
	Clicks      int64     // incremented atomically on every redirect
	CreatedAt   time.Time
}

// NewLink creates a link with a system-generated short code.
func NewLink(originalURL, shortCode string) *Link {
	return &Link{
		OriginalURL: originalURL,
		ShortCode:   shortCode,
		CreatedAt:   time.Now().UTC(),
	}
}

// WithOwner associates the link with an account.
func (l *Link) WithOwner(userID string) *Link {
	l.OwnerID = &userID
	return l
}

// WithTitle sets an optional title.
func (l *Link) WithTitle(title string) *Link {
	if title != "" {
		l.Title = &title
	}
	return l
}

// MarkCustom flags the short code as a user-supplied alias.
func (l *Link) MarkCustom() *Link {
	l.IsCustom = true
	return l
}

// OwnedBy reports whether the given user may manage this link.
func (l *Link) OwnedBy(userID string) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}
