package core

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the layout of every calendar date exchanged by the API.
const DateLayout = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Round rounds `f` to `places` decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}

// Today returns `now` formatted as a calendar date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate parses a calendar date formatted with DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
