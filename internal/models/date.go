// ABOUTME: Calendar-date helpers for weight history entries.
// ABOUTME: History compares dates at day granularity, never full timestamps.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk format of WeightLog dates.
const DateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's own location.
// Callers pass time.Now() to log against the local calendar day.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate normalizes YYYY-MM-DD or RFC3339 input to a YYYY-MM-DD date.
// RFC3339 values keep the calendar date of their own offset.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
}
