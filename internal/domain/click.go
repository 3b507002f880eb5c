package domain

import "time"

// Device categories derived from the user-agent string.
const (
	DeviceMobile  = "Mobile"
	DeviceDesktop = "Desktop"
	DeviceTablet  = "Tablet"
	DeviceUnknown = "Unknown"
)

// Click is one recorded visit to a short link.
// Clicks are append-only: written once by the background capture pipeline,
// never mutated, never read on the redirect path.
type Click struct {
	ID        int64     // auto-incrementing
	LinkID    string    // foreign key to Link
	ClickedAt time.Time
	Referrer  string // "Direct", a friendly label, or a bare hostname
	IPAddress string
	Country   string // best-effort geolocation, "Unknown" on failure
	City      string
	Device    string // one of the Device* constants
	Browser   string
	OS        string
	UserAgent string // raw user-agent string
}

// NewClick creates a click event with the raw request data.
// Derived fields (referrer label, geolocation, device classification) are
// filled in by the capture pipeline before persisting.
func NewClick(linkID, ipAddress, userAgent string) *Click {
	return &Click{
		LinkID:    linkID,
		ClickedAt: time.Now().UTC(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Referrer:  "Direct",
		Country:   "Unknown",
		City:      "Unknown",
		Device:    DeviceUnknown,
		Browser:   "Unknown",
		OS:        "Unknown",
	}
}
