package period

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period is a reporting period keyword. The HTTP layer maps the
// dashboard keywords (semana, mes, trimestre, ano) to these values.
type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
)

// FromKeyword maps a dashboard period keyword to a Period.
// Both the Portuguese dashboard keywords and the internal
// english ones are accepted.
func FromKeyword(keyword string) (Period, error) {
	switch keyword {
	case "semana", "week":
		return Week, nil
	case "mes", "month", "":
		// dashboards default to the month view
		return Month, nil
	case "trimestre", "quarter":
		return Quarter, nil
	case "ano", "year":
		return Year, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, keyword)
	}
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// Range is a half-open [From, To) time interval, always UTC.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r Range) Duration() time.Duration {
	return r.To.Sub(r.From)
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Days returns the number of calendar days the range spans.
func (r Range) Days() int {
	return int(r.Duration().Hours() / 24)
}

// Bucket is one chart sub-interval of a reporting window.
// Key is locale agnostic: "2006-01-02" for day buckets and
// "2006-01" for month buckets. Label localization belongs to
// the presentation layer.
type Bucket struct {
	Key   string `json:"key"`
	Range Range  `json:"range"`
}

// Window is a resolved reporting period: the current range, the
// immediately preceding range of identical length, and the chart
// buckets of the current range.
type Window struct {
	Period      Period      `json:"period"`
	Current     Range       `json:"current"`
	Previous    Range       `json:"previous"`
	Granularity Granularity `json:"granularity"`
	Buckets     []Bucket    `json:"buckets"`
}

// BucketKeyFor returns the key of the bucket t falls into, or
// false if t is outside the current range.
func (w Window) BucketKeyFor(t time.Time) (string, bool) {
	t = t.UTC()
	if !w.Current.Contains(t) {
		return "", false
	}
	switch w.Granularity {
	case GranularityMonth:
		return t.Format("2006-01"), true
	default:
		return t.Format("2006-01-02"), true
	}
}

// Resolve maps a period keyword and a reference date to a concrete
// reporting window. All math is done on UTC calendar days:
//   - week:    the 7 calendar days ending with the reference day
//   - month:   rolling window of the 30 calendar days ending with the
//     reference day (rolling rather than calendar month, matching the
//     dashboard KPI filters)
//   - quarter: the 3 calendar months up to and including the reference day
//   - year:    the 12 calendar months up to and including the reference day
//
// The previous range always starts current.From minus the current
// duration, so the two are disjoint and of equal length for every period.
func Resolve(p Period, reference time.Time) (Window, error) {
	ref := reference.UTC()
	dayEnd := startOfDay(ref).AddDate(0, 0, 1) // end of the reference day, exclusive

	var current Range
	var granularity Granularity
	switch p {
	case Week:
		current = Range{From: dayEnd.AddDate(0, 0, -7), To: dayEnd}
		granularity = GranularityDay
	case Month:
		current = Range{From: dayEnd.AddDate(0, 0, -30), To: dayEnd}
		granularity = GranularityDay
	case Quarter:
		current = Range{From: startOfMonth(ref).AddDate(0, -2, 0), To: dayEnd}
		granularity = GranularityMonth
	case Year:
		current = Range{From: startOfMonth(ref).AddDate(0, -11, 0), To: dayEnd}
		granularity = GranularityMonth
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, string(p))
	}

	previous := Range{
		From: current.From.Add(-current.Duration()),
		To:   current.From,
	}

	return Window{
		Period:      p,
		Current:     current,
		Previous:    previous,
		Granularity: granularity,
		Buckets:     bucketize(current, granularity),
	}, nil
}

func bucketize(r Range, granularity Granularity) []Bucket {
	var buckets []Bucket
	switch granularity {
	case GranularityMonth:
		for from := startOfMonth(r.From); from.Before(r.To); from = from.AddDate(0, 1, 0) {
			to := from.AddDate(0, 1, 0)
			buckets = append(buckets, Bucket{
				Key:   from.Format("2006-01"),
				Range: clamp(Range{From: from, To: to}, r),
			})
		}
	default:
		for from := startOfDay(r.From); from.Before(r.To); from = from.AddDate(0, 0, 1) {
			to := from.AddDate(0, 0, 1)
			buckets = append(buckets, Bucket{
				Key:   from.Format("2006-01-02"),
				Range: clamp(Range{From: from, To: to}, r),
			})
		}
	}
	return buckets
}

// clamp trims a bucket range so it never leaks outside the window,
// e.g. the first month bucket of a quarter that starts mid-range.
func clamp(b, bounds Range) Range {
	if b.From.Before(bounds.From) {
		b.From = bounds.From
	}
	if b.To.After(bounds.To) {
		b.To = bounds.To
	}
	return b
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
