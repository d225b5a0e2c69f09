package enum

// Granularity is the bucketing resolution for sales analytics.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity maps a raw query value to a Granularity, defaulting to
// weekly for anything unrecognised.
func ParseGranularity(raw string) Granularity {
	switch Granularity(raw) {
	case GranularityMonthly:
		return GranularityMonthly
	case GranularityYearly:
		return GranularityYearly
	}
	return GranularityWeekly
}

// BucketCount returns the fixed number of buckets the granularity produces:
// 7 days, 12 months, or 5 years.
func (g Granularity) BucketCount() int {
	switch g {
	case GranularityMonthly:
		return 12
	case GranularityYearly:
		return 5
	default:
		return 7
	}
}

func (g Granularity) String() string {
	return string(g)
}
