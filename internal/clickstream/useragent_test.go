package clickstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"urlite/internal/domain"
)

func TestClassifyUserAgent(t *testing.T) {
	tests := []struct {
		name        string
		userAgent   string
		wantDevice  string
		wantBrowser string
		wantOS      string
	}{
		{
			name:        "iphone safari",
			userAgent:   "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			wantDevice:  domain.DeviceMobile,
			wantBrowser: "Safari",
			wantOS:      "iOS",
		},
		{
			name:        "android chrome",
			userAgent:   "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantDevice:  domain.DeviceMobile,
			wantBrowser: "Chrome",
			wantOS:      "Android",
		},
		{
			name:        "windows chrome",
			userAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantDevice:  domain.DeviceDesktop,
			wantBrowser: "Chrome",
			wantOS:      "Windows",
		},
		{
			name:        "ipad safari",
			userAgent:   "Mozilla/5.0 (iPad; CPU OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			wantDevice:  domain.DeviceTablet,
			wantBrowser: "Safari",
			wantOS:      "iOS",
		},
		{
			name:        "empty string",
			userAgent:   "",
			wantDevice:  domain.DeviceUnknown,
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
		},
		{
			name:        "unparseable",
			userAgent:   "not a real user agent",
			wantDevice:  domain.DeviceUnknown,
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, browser, os := ClassifyUserAgent(tt.userAgent)
			assert.Equal(t, tt.wantDevice, device)
			assert.Equal(t, tt.wantBrowser, browser)
			assert.Equal(t, tt.wantOS, os)
		})
	}
}
