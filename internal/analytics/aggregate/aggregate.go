// Package aggregate holds the metric aggregators of the analytics
// engine. Every function here is pure: facts and a resolved window in,
// a report fragment out. Nothing here touches a clock or does I/O, so
// running an aggregator twice over the same inputs yields identical
// output.
package aggregate

import "math"

// Round1 rounds to one decimal, the precision every percentage field
// in the dashboard payloads uses.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PercentChange computes (current-previous)/previous*100 rounded to
// one decimal. A zero previous value yields exactly 0 (never NaN or
// Inf) so empty history renders as "no change" instead of breaking
// the charts.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}
