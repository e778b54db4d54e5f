package utils

import "time"

// Timestamps are stored in UTC and only converted for presentation.
// Display timezone is Asia/Jakarta (WIB, UTC+7, no DST).
const (
	DisplayTimeFormat = "02 Jan 2006 15:04"
	CSVTimeFormat     = "2006-01-02 15:04:05"
)

var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// WIB has no daylight saving, a fixed offset is equivalent
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// DisplayTime renders a stored timestamp for HTML pages, e.g.
// "05 Mar 2024 14:30". A zero timestamp renders as an empty string.
func DisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayLocation).Format(DisplayTimeFormat)
}

// CSVTime renders a stored timestamp for CSV export, e.g.
// "2024-03-05 14:30:00". A zero timestamp renders as an empty string.
func CSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayLocation).Format(CSVTimeFormat)
}
