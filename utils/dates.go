package utils

import "time"

// DateLayout is the calendar-date format used everywhere: input prompts,
// stored reservations and rendered listings.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Nights is the whole-day difference between check-in and check-out. Zero
// or negative means the range is not a valid stay.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
