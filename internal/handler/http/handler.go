package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"urlite/internal/clickstream"
	"urlite/internal/domain"
	"urlite/internal/service"

	"github.com/go-chi/chi/v5"
)

// Handler holds dependencies for the HTTP handlers.
// Dependencies come in through the constructor; handlers share no globals.
type Handler struct {
	links     *service.LinkService
	analytics *service.AnalyticsService
	auth      *service.AuthService
	clicks    *clickstream.Pool
	logger    *slog.Logger
	baseURL   string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	links *service.LinkService,
	analytics *service.AnalyticsService,
	authSvc *service.AuthService,
	clicks *clickstream.Pool,
	logger *slog.Logger,
	baseURL string,
) *Handler {
	return &Handler{
		links:     links,
		analytics: analytics,
		auth:      authSvc,
		clicks:    clicks,
		logger:    logger,
		baseURL:   baseURL,
	}
}

// Request/response DTOs. JSON field names follow the public API contract
// (camelCase), independent of how the domain models evolve.

type shortenRequest struct {
	OriginalURL string `json:"originalUrl"`
	CustomAlias string `json:"customAlias,omitempty"`
	Title       string `json:"title,omitempty"`
}

type updateLinkRequest struct {
	Title string `json:"title"`
}

type linkResponse struct {
	ID          string    `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	ShortURL    string    `json:"shortUrl"`
	Title       *string   `json:"title"`
	IsCustom    bool      `json:"isCustom"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *Handler) linkToResponse(link *domain.Link) linkResponse {
	return linkResponse{
		ID:          link.ID,
		OriginalURL: link.OriginalURL,
		ShortCode:   link.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", h.baseURL, link.ShortCode),
		Title:       link.Title,
		IsCustom:    link.IsCustom,
		Clicks:      link.Clicks,
		CreatedAt:   link.CreatedAt,
	}
}

// CreateLink handles POST /api/shorten
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	defer r.Body.Close()

	var ownerID *string
	if userID, ok := UserID(r.Context()); ok {
		ownerID = &userID
	}

	link, err := h.links.Create(r.Context(), req.OriginalURL, req.CustomAlias, req.Title, ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, h.linkToResponse(link), "")
}

// Redirect handles GET /{shortCode}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	link, err := h.links.Resolve(r.Context(), shortCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Hand the raw click data to the background pipeline; classification and
	// geolocation must not add latency to the redirect.
	h.clicks.Enqueue(clickstream.Event{
		LinkID:    link.ID,
		ClickedAt: time.Now().UTC(),
		IPAddress: extractIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})

	// 302, not 301: destinations can be deleted, so clients must not cache
	http.Redirect(w, r, link.OriginalURL, http.StatusFound)
}

// ListLinks handles GET /api/urls
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	links, err := h.links.ListByOwner(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	responses := make([]linkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, h.linkToResponse(link))
	}

	respondSuccess(w, http.StatusOK, responses, "")
}

// UpdateLink handles PUT /api/urls/{id}
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id := chi.URLParam(r, "id")

	var req updateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	defer r.Body.Close()

	link, err := h.links.UpdateTitle(r.Context(), id, userID, req.Title)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, h.linkToResponse(link), "")
}

// DeleteLink handles DELETE /api/urls/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.links.Delete(r.Context(), id, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil, "link deleted")
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
