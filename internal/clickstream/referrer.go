package clickstream

import (
	"net/url"
	"strings"
)

// Well-known referrer hostnames mapped to friendly labels.
var referrerLabels = map[string]string{
	"google.com":    "Google",
	"google.co.in":  "Google",
	"facebook.com":  "Facebook",
	"twitter.com":   "Twitter",
	"linkedin.com":  "LinkedIn",
	"instagram.com": "Instagram",
	"reddit.com":    "Reddit",
	"youtube.com":   "YouTube",
	"t.co":          "Twitter",
	"fb.me":         "Facebook",
}

// ClassifyReferrer turns a raw Referer header into a label for analytics.
// Absent or malformed referrers count as "Direct"; known hosts get a
// friendly name; everything else is the bare hostname without leading www.
func ClassifyReferrer(referrerURL string) string {
	if referrerURL == "" {
		return "Direct"
	}

	parsed, err := url.Parse(referrerURL)
	if err != nil || parsed.Hostname() == "" {
		return "Direct"
	}

	hostname := strings.TrimPrefix(parsed.Hostname(), "www.")

	if label, ok := referrerLabels[hostname]; ok {
		return label
	}

	return hostname
}
