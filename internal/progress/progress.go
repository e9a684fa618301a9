// ABOUTME: Weight-history windows and trend statistics for one exercise.
// ABOUTME: Works on calendar-date strings, so comparisons never depend on time of day.
package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gym/internal/models"
)

// Period selects a history window ending today.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "3months"
	PeriodAll     Period = "all"
	PeriodCustom  Period = "custom"
)

// AllPeriods lists the accepted periods.
var AllPeriods = []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodAll, PeriodCustom}

// ParsePeriod validates a period name. Empty means all.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PeriodAll, nil
	}
	for _, p := range AllPeriods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period: %q (use week, month, 3months, all, or custom)", s)
}

// Range bounds a custom window. Dates are YYYY-MM-DD and inclusive;
// an empty bound is open.
type Range struct {
	From string
	To   string
}

// Filter returns the entries of history that fall inside the window.
func Filter(history []models.WeightLog, period Period, r Range, now time.Time) []models.WeightLog {
	keep := func(models.WeightLog) bool { return true }

	switch period {
	case PeriodCustom:
		keep = func(l models.WeightLog) bool {
			return (r.From == "" || l.Date >= r.From) && (r.To == "" || l.Date <= r.To)
		}
	case PeriodWeek, PeriodMonth, PeriodQuarter:
		cutoff := models.DateOf(cutoffTime(period, now))
		keep = func(l models.WeightLog) bool { return l.Date >= cutoff }
	}

	out := []models.WeightLog{}
	for _, l := range history {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func cutoffTime(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(0, -3, 0)
	}
}

// Stats summarizes a window of weight history.
type Stats struct {
	Max   float64
	First float64
	Last  float64
	// Improvement is the percent change from First to Last, 0 when First is 0.
	Improvement float64
	// Points are the filtered entries, in history order, for charting.
	Points []models.WeightLog
}

// Summarize computes stats over filtered, falling back to the whole history
// when the window is empty. It reports false when there is no history at all.
func Summarize(history, filtered []models.WeightLog) (Stats, bool) {
	if len(history) == 0 {
		return Stats{}, false
	}

	data := filtered
	if len(data) == 0 {
		data = history
	}

	st := Stats{
		First:  data[0].Weight,
		Last:   data[len(data)-1].Weight,
		Max:    data[0].Weight,
		Points: filtered,
	}
	for _, l := range data[1:] {
		if l.Weight > st.Max {
			st.Max = l.Weight
		}
	}
	if st.First > 0 {
		st.Improvement = (st.Last - st.First) / st.First * 100
	}
	return st, true
}
