package analytics

import "math"

// GrowthRate is a signed period-over-period change: the magnitude lives in
// Percent (always >= 0) and the sign in IsPositive. It is never NaN or
// infinite, so the UI can render it without guards.
type GrowthRate struct {
	Percent    int  `json:"percent"`
	IsPositive bool `json:"is_positive"`
}

// Growth compares the current period's total against the previous one.
// A previous of zero with a non-zero current is treated as a full-growth
// event (100%, positive); two zeros report 0% positive, which callers may
// render as "no data".
func Growth(current, previous float64) GrowthRate {
	if previous > 0 {
		return GrowthRate{
			Percent:    int(math.Round(math.Abs((current - previous) / previous * 100))),
			IsPositive: current >= previous,
		}
	}
	if current > 0 {
		return GrowthRate{Percent: 100, IsPositive: true}
	}
	return GrowthRate{Percent: 0, IsPositive: true}
}
