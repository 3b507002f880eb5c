package clickstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"urlite/internal/metrics"
)

// Locator resolves a client IP to a coarse country/city pair using an
// external lookup service (ipapi.co by default).
//
// Lookups are best-effort: private and loopback addresses short-circuit to
// "Local" without a network call, and every failure mode (timeout, non-200,
// bad JSON) yields "Unknown" instead of an error. Callers on the click
// pipeline never see a geolocation failure.
type Locator struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// NewLocator creates a locator against the given endpoint
func NewLocator(endpoint string, timeout time.Duration) *Locator {
	return &Locator{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		timeout:  timeout,
	}
}

type geoResponse struct {
	CountryName string `json:"country_name"`
	City        string `json:"city"`
}

// Locate returns the country and city for an IP address
func (l *Locator) Locate(ctx context.Context, ipAddress string) (country, city string) {
	if isLocalAddress(ipAddress) {
		metrics.RecordGeoLookup("local")
		return "Local", "Local"
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/json/", l.endpoint, ipAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.RecordGeoLookup("error")
		return "Unknown", "Unknown"
	}

	resp, err := l.client.Do(req)
	if err != nil {
		metrics.RecordGeoLookup("error")
		return "Unknown", "Unknown"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordGeoLookup("error")
		return "Unknown", "Unknown"
	}

	var geo geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		metrics.RecordGeoLookup("error")
		return "Unknown", "Unknown"
	}

	country, city = geo.CountryName, geo.City
	if country == "" {
		country = "Unknown"
	}
	if city == "" {
		city = "Unknown"
	}

	metrics.RecordGeoLookup("ok")
	return country, city
}

// isLocalAddress reports whether an IP should skip the external lookup
func isLocalAddress(ipAddress string) bool {
	if ipAddress == "" {
		return true
	}

	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return false
	}

	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified()
}
