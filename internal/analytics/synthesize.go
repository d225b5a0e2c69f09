package analytics

import (
	"math"
	"math/rand"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// Placeholder value ranges per granularity. Totals are drawn uniformly from
// [base, base+spread) before any multiplier is applied.
const (
	weeklyBase    = 1000.0
	weeklySpread  = 5000.0
	monthlyBase   = 5000.0
	monthlySpread = 20000.0
	yearlyBase    = 50000.0
	yearlySpread  = 100000.0

	// Year-over-year compounding applied to yearly placeholder totals.
	yearlyGrowthFactor = 1.15
)

// seasonalFactor scales monthly placeholder totals for high-demand months.
var seasonalFactor = map[time.Month]float64{
	time.March:    1.2,
	time.October:  1.3,
	time.November: 1.4,
	time.December: 1.5,
}

// methodSplit defines how a bucket's placeholder total is distributed across
// payment methods: the primary share goes to Cashfree, the secondary to COD,
// and the residual is split 40/30/20/10 across credit card, debit card, UPI
// and net banking.
type methodSplit struct {
	cashfree float64
	cod      float64
}

var splits = map[enum.Granularity]methodSplit{
	enum.GranularityWeekly:  {cashfree: 0.60, cod: 0.30},
	enum.GranularityMonthly: {cashfree: 0.55, cod: 0.35},
	enum.GranularityYearly:  {cashfree: 0.65, cod: 0.25},
}

var residualWeights = []struct {
	method enum.PaymentMethod
	weight float64
}{
	{enum.PaymentMethodCreditCard, 0.4},
	{enum.PaymentMethodDebitCard, 0.3},
	{enum.PaymentMethodUPI, 0.2},
	{enum.PaymentMethodNetBanking, 0.1},
}

// Synthesize produces a placeholder bucket sequence shaped exactly like
// Bucketize output, so the sales chart never renders empty while the store
// has no paid orders yet. The rand source is injected: a fixed seed makes the
// series fully deterministic. Callers must keep the synthetic/real
// distinction explicit (see SalesSeries).
func Synthesize(g enum.Granularity, now time.Time, rng *rand.Rand) []TimeBucket {
	buckets := emptyBuckets(g, now)
	for i := range buckets {
		total := placeholderTotal(g, &buckets[i], i, rng)
		fillMethods(&buckets[i], g, total)
	}
	return buckets
}

func placeholderTotal(g enum.Granularity, b *TimeBucket, index int, rng *rand.Rand) float64 {
	switch g {
	case enum.GranularityMonthly:
		factor := seasonalFactor[b.Start.Month()]
		if factor == 0 {
			factor = 1.0
		}
		return round2((monthlyBase + rng.Float64()*monthlySpread) * factor)
	case enum.GranularityYearly:
		base := yearlyBase + rng.Float64()*yearlySpread
		return round2(base * math.Pow(yearlyGrowthFactor, float64(index)))
	default:
		return round2(weeklyBase + rng.Float64()*weeklySpread)
	}
}

// fillMethods distributes total across payment methods using the documented
// proportions. Net banking takes the exact remainder so the per-method sums
// reconcile with the bucket total after rounding.
func fillMethods(b *TimeBucket, g enum.Granularity, total float64) {
	split := splits[g]
	b.TotalSales = total
	b.ByMethod[enum.PaymentMethodCashfree] = round2(total * split.cashfree)
	b.ByMethod[enum.PaymentMethodCOD] = round2(total * split.cod)

	residual := total - b.ByMethod[enum.PaymentMethodCashfree] - b.ByMethod[enum.PaymentMethodCOD]
	assigned := 0.0
	for _, rw := range residualWeights[:len(residualWeights)-1] {
		share := round2(residual * rw.weight)
		b.ByMethod[rw.method] = share
		assigned += share
	}
	last := residualWeights[len(residualWeights)-1]
	b.ByMethod[last.method] = round2(residual - assigned)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
