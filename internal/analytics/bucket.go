// Package analytics holds the pure sales-aggregation core of the admin panel:
// time bucketing, growth rates, and the synthetic fallback series. Nothing in
// this package performs I/O; callers feed it fully-defaulted orders from the
// upstream boundary and a clock value, which keeps every function trivially
// testable and idempotent.
package analytics

import (
	"strconv"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// TimeBucket is one aggregated slice of orders for a discrete period.
// Spans are half-open: an order belongs to the bucket iff
// Start <= CreatedAt < End.
type TimeBucket struct {
	Label      string                         `json:"label"`
	Start      time.Time                      `json:"start"`
	End        time.Time                      `json:"end"`
	TotalSales float64                        `json:"total_sales"`
	OrderCount int                            `json:"order_count"`
	ByMethod   map[enum.PaymentMethod]float64 `json:"by_method"`
}

// Bucketize groups orders into fixed, contiguous, chronologically ascending
// buckets: the last 7 calendar days for weekly, the 12 months of now's
// calendar year for monthly, and the 5 calendar years ending with now's for
// yearly. Only paid orders contribute to TotalSales and ByMethod; every order
// inside a span counts toward OrderCount. An empty order list yields nil so
// the caller can fall back to the synthesizer.
func Bucketize(orders []entity.Order, g enum.Granularity, now time.Time) []TimeBucket {
	if len(orders) == 0 {
		return nil
	}

	buckets := emptyBuckets(g, now)
	for _, order := range orders {
		idx := bucketIndex(buckets, order.CreatedAt)
		if idx < 0 {
			continue
		}
		b := &buckets[idx]
		b.OrderCount++
		if !order.IsPaid() {
			continue
		}
		b.TotalSales += order.Total
		b.ByMethod[enum.NormalizePaymentMethod(string(order.Payment.Method))] += order.Total
	}
	return buckets
}

// emptyBuckets builds the zero-valued bucket skeleton for a granularity.
// Every ByMethod map is pre-seeded with the full method set so charts always
// receive a uniform shape.
func emptyBuckets(g enum.Granularity, now time.Time) []TimeBucket {
	buckets := make([]TimeBucket, 0, g.BucketCount())
	switch g {
	case enum.GranularityMonthly:
		for month := time.January; month <= time.December; month++ {
			start := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, newBucket(start.Format("Jan"), start, start.AddDate(0, 1, 0)))
		}
	case enum.GranularityYearly:
		for year := now.Year() - 4; year <= now.Year(); year++ {
			start := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, newBucket(strconv.Itoa(year), start, start.AddDate(1, 0, 0)))
		}
	default:
		for i := 6; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
			buckets = append(buckets, newBucket(start.Format("Mon"), start, start.AddDate(0, 0, 1)))
		}
	}
	return buckets
}

func newBucket(label string, start, end time.Time) TimeBucket {
	byMethod := make(map[enum.PaymentMethod]float64, len(enum.KnownPaymentMethods)+1)
	for _, m := range enum.KnownPaymentMethods {
		byMethod[m] = 0
	}
	byMethod[enum.PaymentMethodOther] = 0
	return TimeBucket{Label: label, Start: start, End: end, ByMethod: byMethod}
}

func bucketIndex(buckets []TimeBucket, at time.Time) int {
	for i := range buckets {
		if !at.Before(buckets[i].Start) && at.Before(buckets[i].End) {
			return i
		}
	}
	return -1
}

// PeriodRevenue sums the paid totals of orders created inside [start, end).
// The dashboard uses it for month-over-month growth windows.
func PeriodRevenue(orders []entity.Order, start, end time.Time) float64 {
	var total float64
	for _, order := range orders {
		if !order.IsPaid() {
			continue
		}
		if !order.CreatedAt.Before(start) && order.CreatedAt.Before(end) {
			total += order.Total
		}
	}
	return total
}

// PeriodOrderCount counts orders created inside [start, end) regardless of
// payment status.
func PeriodOrderCount(orders []entity.Order, start, end time.Time) int {
	var n int
	for _, order := range orders {
		if !order.CreatedAt.Before(start) && order.CreatedAt.Before(end) {
			n++
		}
	}
	return n
}
