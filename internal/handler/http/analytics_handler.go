package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Per-dimension DTOs so each breakdown keys its label by name
// (referrer/device/country/browser) as the dashboard expects.

type summaryResponse struct {
	TotalClicks    int64 `json:"totalClicks"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
	ClicksToday    int64 `json:"clicksToday"`
	ClicksThisWeek int64 `json:"clicksThisWeek"`
}

type timelineEntry struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type referrerEntry struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

type deviceEntry struct {
	Device string `json:"device"`
	Count  int64  `json:"count"`
}

type locationEntry struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type browserEntry struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// AnalyticsSummary handles GET /api/analytics/{urlID}/summary
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	summary, err := h.analytics.Summary(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, summaryResponse{
		TotalClicks:    summary.TotalClicks,
		UniqueVisitors: summary.UniqueVisitors,
		ClicksToday:    summary.ClicksToday,
		ClicksThisWeek: summary.ClicksThisWeek,
	}, "")
}

// AnalyticsTimeline handles GET /api/analytics/{urlID}/timeline?days=N
func (h *Handler) AnalyticsTimeline(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	points, err := h.analytics.Timeline(r.Context(), chi.URLParam(r, "urlID"), userID, days)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entries := make([]timelineEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, timelineEntry{Date: p.Date, Clicks: p.Clicks})
	}

	respondSuccess(w, http.StatusOK, entries, "")
}

// AnalyticsReferrers handles GET /api/analytics/{urlID}/referrers
func (h *Handler) AnalyticsReferrers(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	buckets, err := h.analytics.Referrers(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entries := make([]referrerEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, referrerEntry{Referrer: b.Label, Count: b.Count})
	}

	respondSuccess(w, http.StatusOK, entries, "")
}

// AnalyticsDevices handles GET /api/analytics/{urlID}/devices
func (h *Handler) AnalyticsDevices(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	buckets, err := h.analytics.Devices(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entries := make([]deviceEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, deviceEntry{Device: b.Label, Count: b.Count})
	}

	respondSuccess(w, http.StatusOK, entries, "")
}

// AnalyticsLocations handles GET /api/analytics/{urlID}/locations
func (h *Handler) AnalyticsLocations(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	buckets, err := h.analytics.Locations(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entries := make([]locationEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, locationEntry{Country: b.Label, Count: b.Count})
	}

	respondSuccess(w, http.StatusOK, entries, "")
}

// AnalyticsBrowsers handles GET /api/analytics/{urlID}/browsers
func (h *Handler) AnalyticsBrowsers(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	buckets, err := h.analytics.Browsers(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	entries := make([]browserEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, browserEntry{Browser: b.Label, Count: b.Count})
	}

	respondSuccess(w, http.StatusOK, entries, "")
}
