package domain

// ClickSummary is the headline analytics for one link.
type ClickSummary struct {
	TotalClicks    int64
	UniqueVisitors int64
	ClicksToday    int64
	ClicksThisWeek int64
}

// TimelinePoint is the click count for one calendar day (YYYY-MM-DD).
type TimelinePoint struct {
	Date   string
	Clicks int64
}

// BucketCount is one row of a GROUP BY aggregation
// (referrer, device, country or browser).
type BucketCount struct {
	Label string
	Count int64
}
