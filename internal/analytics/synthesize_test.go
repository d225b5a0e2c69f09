package analytics

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

func TestSynthesize_ShapeAndRanges(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		g       enum.Granularity
		count   int
		minBase float64
	}{
		{enum.GranularityWeekly, 7, weeklyBase},
		{enum.GranularityMonthly, 12, monthlyBase},
		{enum.GranularityYearly, 5, yearlyBase},
	}
	for _, tt := range tests {
		t.Run(string(tt.g), func(t *testing.T) {
			buckets := Synthesize(tt.g, now, rand.New(rand.NewSource(42)))
			if len(buckets) != tt.count {
				t.Fatalf("len = %d, want %d", len(buckets), tt.count)
			}
			for i, b := range buckets {
				if b.TotalSales < tt.minBase {
					t.Fatalf("bucket %d total %v below base %v", i, b.TotalSales, tt.minBase)
				}
				var methodSum float64
				for _, v := range b.ByMethod {
					if v < 0 {
						t.Fatalf("bucket %d has negative method share", i)
					}
					methodSum += v
				}
				if math.Abs(methodSum-b.TotalSales) > 0.05 {
					t.Fatalf("bucket %d method sum %v != total %v", i, methodSum, b.TotalSales)
				}
			}
		})
	}
}

func TestSynthesize_DeterministicUnderFixedSeed(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	a := Synthesize(enum.GranularityMonthly, now, rand.New(rand.NewSource(7)))
	b := Synthesize(enum.GranularityMonthly, now, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i].TotalSales != b[i].TotalSales {
			t.Fatalf("bucket %d differs under identical seed: %v vs %v", i, a[i].TotalSales, b[i].TotalSales)
		}
	}
}

func TestSynthesize_WeeklySplitProportions(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	buckets := Synthesize(enum.GranularityWeekly, now, rand.New(rand.NewSource(1)))
	for i, b := range buckets {
		wantCashfree := round2(b.TotalSales * 0.60)
		if b.ByMethod[enum.PaymentMethodCashfree] != wantCashfree {
			t.Fatalf("bucket %d cashfree = %v, want %v", i, b.ByMethod[enum.PaymentMethodCashfree], wantCashfree)
		}
		wantCOD := round2(b.TotalSales * 0.30)
		if b.ByMethod[enum.PaymentMethodCOD] != wantCOD {
			t.Fatalf("bucket %d cod = %v, want %v", i, b.ByMethod[enum.PaymentMethodCOD], wantCOD)
		}
	}
}

func TestBuildSalesSeries_TaggedKind(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(3))

	synthetic := BuildSalesSeries(nil, enum.GranularityWeekly, now, rng)
	if synthetic.Kind != SeriesSynthetic {
		t.Fatalf("empty orders should synthesize, kind = %s", synthetic.Kind)
	}
	if len(synthetic.Buckets) != 7 {
		t.Fatalf("synthetic weekly series len = %d", len(synthetic.Buckets))
	}
	for i, b := range synthetic.Buckets {
		if b.TotalSales <= 0 {
			t.Fatalf("synthetic bucket %d has non-positive total", i)
		}
	}

	actual := BuildSalesSeries(
		[]entity.Order{paidOrder(100, enum.PaymentMethodUPI, now)},
		enum.GranularityWeekly, now, rng,
	)
	if actual.Kind != SeriesReal {
		t.Fatalf("orders present should stay real, kind = %s", actual.Kind)
	}
}
