package clickstream

import (
	"urlite/internal/domain"

	"github.com/mileusna/useragent"
)

// ClassifyUserAgent derives a coarse device category, browser name and OS
// name from a raw user-agent string. Unparseable or empty input yields
// "Unknown" across the board.
func ClassifyUserAgent(uaString string) (device, browser, os string) {
	if uaString == "" {
		return domain.DeviceUnknown, "Unknown", "Unknown"
	}

	ua := useragent.Parse(uaString)

	switch {
	case ua.Mobile:
		device = domain.DeviceMobile
	case ua.Tablet:
		device = domain.DeviceTablet
	case ua.Desktop || ua.Bot:
		device = domain.DeviceDesktop
	default:
		device = domain.DeviceUnknown
	}

	browser = ua.Name
	if browser == "" {
		browser = "Unknown"
	}

	os = ua.OS
	if os == "" {
		os = "Unknown"
	}

	return device, browser, os
}
