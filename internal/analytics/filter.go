package analytics

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll is the sentinel that disables a strategy/side/range filter.
const FilterAll = "all"

// Filter selects the trade set an aggregation runs over. An explicit From/To
// window takes precedence over the relative Range (a count of trailing days).
type Filter struct {
	From     *time.Time
	To       *time.Time
	Range    string
	Strategy string
	Side     string
}

// Window resolves the filter's date bounds relative to now. From is floored
// to start-of-day and To is ceiled to end-of-day, both inclusive. A nil bound
// means unbounded on that side.
func (f Filter) Window(now time.Time) (*time.Time, *time.Time) {
	if f.From != nil || f.To != nil {
		var from, to *time.Time
		if f.From != nil {
			v := startOfDay(*f.From)
			from = &v
		}
		if f.To != nil {
			v := endOfDay(*f.To)
			to = &v
		}
		return from, to
	}

	r := strings.TrimSpace(f.Range)
	if r == "" || strings.EqualFold(r, FilterAll) {
		return nil, nil
	}
	days, err := strconv.Atoi(r)
	if err != nil {
		return nil, nil
	}
	to := endOfDay(now)
	from := startOfDay(now.AddDate(0, 0, -days))
	return &from, &to
}

// StrategyFilter returns the exact-match strategy predicate, or nil for "all".
func (f Filter) StrategyFilter() *string {
	return exactFilter(f.Strategy)
}

// SideFilter returns the exact-match side predicate, or nil for "all".
func (f Filter) SideFilter() *string {
	return exactFilter(f.Side)
}

func exactFilter(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, FilterAll) {
		return nil
	}
	return &v
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}
