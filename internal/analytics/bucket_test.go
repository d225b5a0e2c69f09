package analytics

import (
	"testing"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

var testNow = time.Date(2026, time.June, 15, 12, 30, 0, 0, time.UTC)

func paidOrder(total float64, method enum.PaymentMethod, createdAt time.Time) entity.Order {
	return entity.Order{
		ID:        "o-" + createdAt.Format("20060102150405"),
		Total:     total,
		Payment:   entity.Payment{Method: method, Status: enum.PaymentStatusPaid},
		CreatedAt: createdAt,
	}
}

func TestBucketize_FixedBucketCounts(t *testing.T) {
	inputs := [][]entity.Order{
		{paidOrder(100, enum.PaymentMethodUPI, testNow)},
		{
			paidOrder(100, enum.PaymentMethodUPI, testNow),
			paidOrder(250, enum.PaymentMethodCOD, testNow.AddDate(0, 0, -3)),
			paidOrder(75, enum.PaymentMethodCashfree, testNow.AddDate(0, -2, 0)),
		},
	}
	for _, orders := range inputs {
		if got := len(Bucketize(orders, enum.GranularityWeekly, testNow)); got != 7 {
			t.Fatalf("weekly buckets = %d, want 7", got)
		}
		if got := len(Bucketize(orders, enum.GranularityMonthly, testNow)); got != 12 {
			t.Fatalf("monthly buckets = %d, want 12", got)
		}
		if got := len(Bucketize(orders, enum.GranularityYearly, testNow)); got != 5 {
			t.Fatalf("yearly buckets = %d, want 5", got)
		}
	}
}

func TestBucketize_EmptyInputReturnsNil(t *testing.T) {
	if got := Bucketize(nil, enum.GranularityWeekly, testNow); got != nil {
		t.Fatalf("expected nil for nil input, got %d buckets", len(got))
	}
	if got := Bucketize([]entity.Order{}, enum.GranularityMonthly, testNow); got != nil {
		t.Fatalf("expected nil for empty input, got %d buckets", len(got))
	}
}

func TestBucketize_WeeklySingleOrder(t *testing.T) {
	orders := []entity.Order{paidOrder(100, enum.PaymentMethodUPI, testNow)}
	buckets := Bucketize(orders, enum.GranularityWeekly, testNow)

	for i, b := range buckets {
		if i == len(buckets)-1 {
			if b.TotalSales != 100 {
				t.Fatalf("today's bucket total = %v, want 100", b.TotalSales)
			}
			if b.ByMethod[enum.PaymentMethodUPI] != 100 {
				t.Fatalf("today's upi sum = %v, want 100", b.ByMethod[enum.PaymentMethodUPI])
			}
			continue
		}
		if b.TotalSales != 0 {
			t.Fatalf("bucket %d (%s) total = %v, want 0", i, b.Label, b.TotalSales)
		}
	}
}

func TestBucketize_MonthlyTotalsMatchPaidYearRevenue(t *testing.T) {
	orders := []entity.Order{
		paidOrder(100, enum.PaymentMethodUPI, testNow),
		paidOrder(300, enum.PaymentMethodCOD, time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)),
		paidOrder(500, enum.PaymentMethodCashfree, time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)),
		// outside current year
		paidOrder(999, enum.PaymentMethodUPI, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		// pending never contributes to sales
		{
			Total:     500,
			Payment:   entity.Payment{Method: enum.PaymentMethodUPI, Status: enum.PaymentStatusPending},
			CreatedAt: testNow,
		},
	}

	buckets := Bucketize(orders, enum.GranularityMonthly, testNow)
	var sum float64
	for _, b := range buckets {
		sum += b.TotalSales
	}
	if sum != 900 {
		t.Fatalf("monthly totals sum = %v, want 900 (paid current-year revenue)", sum)
	}
}

func TestBucketize_PendingCountedInOrderCountOnly(t *testing.T) {
	pending := entity.Order{
		Total:     500,
		Payment:   entity.Payment{Method: enum.PaymentMethodUPI, Status: enum.PaymentStatusPending},
		CreatedAt: testNow,
	}
	buckets := Bucketize([]entity.Order{pending}, enum.GranularityWeekly, testNow)
	today := buckets[len(buckets)-1]
	if today.TotalSales != 0 {
		t.Fatalf("pending order contributed %v to sales", today.TotalSales)
	}
	if today.OrderCount != 1 {
		t.Fatalf("pending order not counted, count = %d", today.OrderCount)
	}
}

func TestBucketize_UnknownMethodFoldsIntoOther(t *testing.T) {
	orders := []entity.Order{paidOrder(80, enum.PaymentMethod("paytm-wallet"), testNow)}
	buckets := Bucketize(orders, enum.GranularityWeekly, testNow)
	today := buckets[len(buckets)-1]
	if today.ByMethod[enum.PaymentMethodOther] != 80 {
		t.Fatalf("other sum = %v, want 80", today.ByMethod[enum.PaymentMethodOther])
	}
}

func TestBucketize_Idempotent(t *testing.T) {
	orders := []entity.Order{
		paidOrder(100, enum.PaymentMethodUPI, testNow),
		paidOrder(40, enum.PaymentMethodCOD, testNow.AddDate(0, 0, -2)),
	}
	first := Bucketize(orders, enum.GranularityWeekly, testNow)
	second := Bucketize(orders, enum.GranularityWeekly, testNow)
	if len(first) != len(second) {
		t.Fatalf("bucket counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].TotalSales != second[i].TotalSales || first[i].Label != second[i].Label {
			t.Fatalf("bucket %d differs between runs", i)
		}
		for m, v := range first[i].ByMethod {
			if second[i].ByMethod[m] != v {
				t.Fatalf("bucket %d method %s differs", i, m)
			}
		}
	}
	// input untouched
	if orders[0].Total != 100 || orders[1].Total != 40 {
		t.Fatal("input orders were mutated")
	}
}

func TestBucketize_BoundariesAreContiguous(t *testing.T) {
	for _, g := range []enum.Granularity{enum.GranularityWeekly, enum.GranularityMonthly, enum.GranularityYearly} {
		buckets := Bucketize([]entity.Order{paidOrder(1, enum.PaymentMethodUPI, testNow)}, g, testNow)
		for i := 1; i < len(buckets); i++ {
			if !buckets[i].Start.Equal(buckets[i-1].End) {
				t.Fatalf("%s: bucket %d start %v != previous end %v", g, i, buckets[i].Start, buckets[i-1].End)
			}
		}
	}
}

func TestPeriodRevenue(t *testing.T) {
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	orders := []entity.Order{
		paidOrder(100, enum.PaymentMethodUPI, testNow),
		paidOrder(50, enum.PaymentMethodCOD, start.AddDate(0, -1, 0)),
		{
			Total:     500,
			Payment:   entity.Payment{Method: enum.PaymentMethodUPI, Status: enum.PaymentStatusPending},
			CreatedAt: testNow,
		},
	}
	if got := PeriodRevenue(orders, start, end); got != 100 {
		t.Fatalf("PeriodRevenue = %v, want 100", got)
	}
	if got := PeriodOrderCount(orders, start, end); got != 2 {
		t.Fatalf("PeriodOrderCount = %v, want 2", got)
	}
}
