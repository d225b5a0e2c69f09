package analytics

import (
	"math/rand"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// SeriesKind tags whether a sales series was derived from real orders or
// synthesized as a placeholder. The tag travels with the data so no consumer
// can mistake one for the other.
type SeriesKind string

const (
	SeriesReal      SeriesKind = "real"
	SeriesSynthetic SeriesKind = "synthetic"
)

// SalesSeries is the chart-ready result of bucketing: a fixed-length bucket
// sequence plus the real/synthetic tag.
type SalesSeries struct {
	Kind    SeriesKind   `json:"kind"`
	Buckets []TimeBucket `json:"buckets"`
}

// BuildSalesSeries bucketizes orders and, when the store has no orders at
// all, substitutes the synthetic placeholder series at the same granularity.
func BuildSalesSeries(orders []entity.Order, g enum.Granularity, now time.Time, rng *rand.Rand) SalesSeries {
	if buckets := Bucketize(orders, g, now); buckets != nil {
		return SalesSeries{Kind: SeriesReal, Buckets: buckets}
	}
	return SalesSeries{Kind: SeriesSynthetic, Buckets: Synthesize(g, now, rng)}
}
