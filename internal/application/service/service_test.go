package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/analytics"
	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// fakeCommerce stubs the commerce gateway with per-method hooks. Methods
// without a hook panic, which keeps tests honest about what they exercise.
type fakeCommerce struct {
	gateway.CommerceGateway

	listOrders        func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error)
	getOrder          func(ctx context.Context, id string) (*entity.Order, error)
	updateOrderStatus func(ctx context.Context, id string, status enum.OrderStatus) error
	topCities         func(ctx context.Context, limit int) ([]entity.CityStats, error)
}

func (f *fakeCommerce) ListOrders(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
	return f.listOrders(ctx, filter)
}

func (f *fakeCommerce) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return f.getOrder(ctx, id)
}

func (f *fakeCommerce) UpdateOrderStatus(ctx context.Context, id string, status enum.OrderStatus) error {
	return f.updateOrderStatus(ctx, id, status)
}

func (f *fakeCommerce) TopCities(ctx context.Context, limit int) ([]entity.CityStats, error) {
	return f.topCities(ctx, limit)
}

type fakeShipping struct {
	statuses []string
	err      error
}

func (f *fakeShipping) OrderStatuses(ctx context.Context) ([]string, error) {
	return f.statuses, f.err
}

func orderAt(created time.Time, status enum.OrderStatus, total float64, paid bool) entity.Order {
	paymentStatus := enum.PaymentStatusPending
	if paid {
		paymentStatus = enum.PaymentStatusPaid
	}
	return entity.Order{
		ID:        "ord-" + created.Format("20060102"),
		Total:     total,
		CreatedAt: created,
		Payment: entity.Payment{
			Method: enum.PaymentMethodUPI,
			Status: paymentStatus,
		},
		StatusHistory: []entity.StatusChange{{Status: status, ChangedAt: created}},
	}
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current enum.OrderStatus
		target  enum.OrderStatus
		wantErr bool
	}{
		{"processing to ready-to-ship", enum.OrderStatusProcessing, enum.OrderStatusReadyToShip, false},
		{"processing to cancelled", enum.OrderStatusProcessing, enum.OrderStatusCancelled, false},
		{"processing skips to delivered", enum.OrderStatusProcessing, enum.OrderStatusDelivered, true},
		{"ready-to-ship to shipped", enum.OrderStatusReadyToShip, enum.OrderStatusShipped, false},
		{"shipped to cancelled", enum.OrderStatusShipped, enum.OrderStatusCancelled, true},
		{"delivered is terminal", enum.OrderStatusDelivered, enum.OrderStatusProcessing, true},
		{"cancelled is terminal", enum.OrderStatusCancelled, enum.OrderStatusReadyToShip, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upstreamCalled := false
			commerce := &fakeCommerce{
				getOrder: func(ctx context.Context, id string) (*entity.Order, error) {
					order := orderAt(now, tc.current, 100, true)
					return &order, nil
				},
				updateOrderStatus: func(ctx context.Context, id string, status enum.OrderStatus) error {
					upstreamCalled = true
					return nil
				},
			}
			svc := NewOrderService(commerce, cache.New(time.Minute))

			err := svc.UpdateStatus(context.Background(), "ord-1", tc.target)
			if tc.wantErr {
				if err == nil {
					t.Fatal("illegal transition was accepted")
				}
				if upstreamCalled {
					t.Fatal("illegal transition reached upstream")
				}
				return
			}
			if err != nil {
				t.Fatalf("legal transition rejected: %v", err)
			}
			if !upstreamCalled {
				t.Fatal("legal transition never reached upstream")
			}
		})
	}
}

func TestUpdateStatusInvalidatesOrderAndStatsCaches(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := cache.New(time.Minute)

	ordersKey := cache.Key("orders", "page=1")
	statsKey := cache.Key("dashboard-stats", "granularity=weekly")
	reviewsKey := cache.Key("reviews")
	store.Complete(ordersKey, store.Begin(ordersKey), "orders", "orders")
	store.Complete(statsKey, store.Begin(statsKey), "stats", "orders", "stats")
	store.Complete(reviewsKey, store.Begin(reviewsKey), "reviews", "reviews")

	commerce := &fakeCommerce{
		getOrder: func(ctx context.Context, id string) (*entity.Order, error) {
			order := orderAt(now, enum.OrderStatusProcessing, 100, true)
			return &order, nil
		},
		updateOrderStatus: func(ctx context.Context, id string, status enum.OrderStatus) error {
			return nil
		},
	}
	svc := NewOrderService(commerce, store)

	if err := svc.UpdateStatus(context.Background(), "ord-1", enum.OrderStatusReadyToShip); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if _, ok := store.Get(ordersKey); ok {
		t.Error("orders cache survived a status mutation")
	}
	if _, ok := store.Get(statsKey); ok {
		t.Error("stats cache survived a status mutation")
	}
	if _, ok := store.Get(reviewsKey); !ok {
		t.Error("unrelated reviews cache was dropped")
	}
}

func TestOrderListDegradesToEmptyPage(t *testing.T) {
	commerce := &fakeCommerce{
		listOrders: func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
			return nil, errors.New("upstream down")
		},
	}
	svc := NewOrderService(commerce, cache.New(time.Minute))

	page := svc.List(context.Background(), gateway.OrderFilter{
		PageFilter: gateway.PageFilter{Page: 3, Limit: 20},
	})
	if page == nil || page.Orders == nil {
		t.Fatal("list must degrade to an empty page, not nil")
	}
	if len(page.Orders) != 0 || page.Page != 3 {
		t.Errorf("page = %+v", page)
	}
}

func TestTopCitiesCachesAndDegradesToEmpty(t *testing.T) {
	calls := 0
	fail := false
	commerce := &fakeCommerce{
		topCities: func(ctx context.Context, limit int) ([]entity.CityStats, error) {
			calls++
			if fail {
				return nil, errors.New("upstream down")
			}
			if limit != 5 {
				t.Errorf("limit = %d, want 5", limit)
			}
			return []entity.CityStats{{City: "Mumbai", OrderCount: 42}}, nil
		},
	}
	store := cache.New(time.Minute)
	svc := NewOrderService(commerce, store)

	cities := svc.TopCities(context.Background(), 5)
	if len(cities) != 1 || cities[0].City != "Mumbai" {
		t.Fatalf("cities = %+v", cities)
	}

	// second read is served from cache
	svc.TopCities(context.Background(), 5)
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}

	// a stats invalidation (as after a status mutation) forces a refetch,
	// and a failing upstream degrades to an empty non-nil list
	store.Invalidate("stats")
	fail = true
	cities = svc.TopCities(context.Background(), 5)
	if cities == nil || len(cities) != 0 {
		t.Errorf("cities = %v, want empty non-nil", cities)
	}
	if calls != 2 {
		t.Errorf("upstream called %d times, want 2", calls)
	}
}

func TestDashboardStatsComposesRealData(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(now.AddDate(0, 0, -1), enum.OrderStatusProcessing, 300, true),
		orderAt(now.AddDate(0, 0, -2), enum.OrderStatusShipped, 150, true),
		orderAt(now.AddDate(0, -1, 0), enum.OrderStatusDelivered, 300, true), // previous month
		orderAt(now.AddDate(0, 0, -3), enum.OrderStatusProcessing, 999, false),
	}

	commerce := &fakeCommerce{
		listOrders: func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
			return &gateway.OrderPage{Orders: orders, Total: int64(len(orders))}, nil
		},
		topCities: func(ctx context.Context, limit int) ([]entity.CityStats, error) {
			return []entity.CityStats{{City: "Pune", OrderCount: 10}}, nil
		},
	}
	shipping := &fakeShipping{statuses: []string{"DELIVERED", "IN TRANSIT"}}

	svc := NewDashboardService(commerce, shipping, cache.New(time.Minute), rand.New(rand.NewSource(1)))
	svc.now = func() time.Time { return now }

	stats := svc.GetDashboardStats(context.Background(), enum.GranularityWeekly)

	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d", stats.TotalOrders)
	}
	if stats.TotalRevenue != 750 {
		t.Errorf("TotalRevenue = %v, want 750 (pending order excluded)", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 450 {
		t.Errorf("MonthlyRevenue = %v, want 450", stats.MonthlyRevenue)
	}
	// 450 vs 300 previous month: +50%
	if stats.RevenueGrowth.Percent != 50 || !stats.RevenueGrowth.IsPositive {
		t.Errorf("RevenueGrowth = %+v", stats.RevenueGrowth)
	}
	if stats.SalesChart.Kind != analytics.SeriesReal {
		t.Errorf("chart kind = %q, want real", stats.SalesChart.Kind)
	}
	if stats.StatusDistribution[enum.OrderStatusDelivered] != 1 ||
		stats.StatusDistribution[enum.OrderStatusShipped] != 1 {
		t.Errorf("distribution = %v", stats.StatusDistribution)
	}
	if len(stats.TopCities) != 1 || stats.TopCities[0].City != "Pune" {
		t.Errorf("cities = %+v", stats.TopCities)
	}
}

func TestDashboardStatsFallsBackOnFailures(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	commerce := &fakeCommerce{
		listOrders: func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
			return nil, errors.New("upstream down")
		},
		topCities: func(ctx context.Context, limit int) ([]entity.CityStats, error) {
			return nil, errors.New("upstream down")
		},
	}
	shipping := &fakeShipping{err: errors.New("aggregator down")}

	svc := NewDashboardService(commerce, shipping, cache.New(time.Minute), rand.New(rand.NewSource(1)))
	svc.now = func() time.Time { return now }

	stats := svc.GetDashboardStats(context.Background(), enum.GranularityMonthly)

	if stats.TotalOrders != 0 || stats.TotalRevenue != 0 {
		t.Errorf("totals not zero: %+v", stats)
	}
	// with no orders at all the chart must be the tagged synthetic series
	if stats.SalesChart.Kind != analytics.SeriesSynthetic {
		t.Errorf("chart kind = %q, want synthetic", stats.SalesChart.Kind)
	}
	if len(stats.SalesChart.Buckets) != 12 {
		t.Errorf("monthly synthetic series has %d buckets", len(stats.SalesChart.Buckets))
	}
	if len(stats.StatusDistribution) != 5 {
		t.Errorf("distribution = %v", stats.StatusDistribution)
	}
	if stats.TopCities == nil || len(stats.TopCities) != 0 {
		t.Errorf("cities = %v, want empty non-nil", stats.TopCities)
	}
	if stats.RevenueGrowth.Percent != 0 || !stats.RevenueGrowth.IsPositive {
		t.Errorf("growth on empty data = %+v", stats.RevenueGrowth)
	}
}

func TestDashboardStatsServedFromCache(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	calls := 0
	commerce := &fakeCommerce{
		listOrders: func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
			calls++
			return &gateway.OrderPage{Orders: []entity.Order{}, Total: 0}, nil
		},
		topCities: func(ctx context.Context, limit int) ([]entity.CityStats, error) {
			return []entity.CityStats{}, nil
		},
	}
	shipping := &fakeShipping{statuses: []string{}}

	svc := NewDashboardService(commerce, shipping, cache.New(time.Minute), rand.New(rand.NewSource(1)))
	svc.now = func() time.Time { return now }

	svc.GetDashboardStats(context.Background(), enum.GranularityWeekly)
	svc.GetDashboardStats(context.Background(), enum.GranularityWeekly)
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (second read cached)", calls)
	}

	// a different granularity is a different key
	svc.GetDashboardStats(context.Background(), enum.GranularityYearly)
	if calls != 2 {
		t.Errorf("upstream called %d times, want 2", calls)
	}
}

func TestStandaloneAnalyticsViewsMatchStatsPayload(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(now.AddDate(0, 0, -1), enum.OrderStatusProcessing, 300, true),
	}
	commerce := &fakeCommerce{
		listOrders: func(ctx context.Context, filter gateway.OrderFilter) (*gateway.OrderPage, error) {
			return &gateway.OrderPage{Orders: orders, Total: 1}, nil
		},
		topCities: func(ctx context.Context, limit int) ([]entity.CityStats, error) {
			return []entity.CityStats{}, nil
		},
	}
	shipping := &fakeShipping{statuses: []string{"DELIVERED"}}

	svc := NewDashboardService(commerce, shipping, cache.New(time.Minute), rand.New(rand.NewSource(1)))
	svc.now = func() time.Time { return now }

	stats := svc.GetDashboardStats(context.Background(), enum.GranularityWeekly)

	chart := svc.SalesChart(context.Background(), enum.GranularityWeekly)
	if chart.Kind != stats.SalesChart.Kind || len(chart.Buckets) != len(stats.SalesChart.Buckets) {
		t.Errorf("sales view = %+v, stats chart = %+v", chart, stats.SalesChart)
	}

	dist := svc.ShippingDistribution(context.Background())
	if dist[enum.OrderStatusDelivered] != stats.StatusDistribution[enum.OrderStatusDelivered] {
		t.Errorf("shipping view = %v, stats distribution = %v", dist, stats.StatusDistribution)
	}
}

func TestSubAdminValidation(t *testing.T) {
	svc := NewSubAdminService(&fakeCommerce{}, cache.New(time.Minute))

	_, err := svc.Create(context.Background(), gateway.SubAdminInput{
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Password:    "supersecret",
		Department:  enum.Department("Warehouse"),
		Permissions: []string{"Orders", "Teleportation"},
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want validation AppError", err)
	}
	fields := map[string]bool{}
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	if !fields["department"] || !fields["permissions"] {
		t.Errorf("validation errors = %+v", appErr.Errors)
	}

	// a valid input reaches the gateway (hook set, so no panic means we
	// would have called it; here we assert validation passes first)
	err = validateSubAdminInput(gateway.SubAdminInput{
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Password:    "supersecret",
		Department:  enum.DepartmentOrders,
		Permissions: []string{"Orders", "Returns"},
	}, true)
	if err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}
