package service

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/analytics"
	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
)

// aggregateFetchLimit caps how many orders one stats computation pulls.
const aggregateFetchLimit = 1000

// DashboardService composes the order feed, the analytics core, the shipping
// distribution and the city aggregates into one stats payload. Every upstream
// failure degrades to a documented zero value; the dashboard never errors.
type DashboardService struct {
	commerce gateway.CommerceGateway
	shipping gateway.ShippingGateway
	cache    *cache.Store
	rng      *rand.Rand
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	commerce gateway.CommerceGateway,
	shipping gateway.ShippingGateway,
	cacheStore *cache.Store,
	rng *rand.Rand,
) *DashboardService {
	return &DashboardService{
		commerce: commerce,
		shipping: shipping,
		cache:    cacheStore,
		rng:      rng,
		now:      time.Now,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalOrders        int64                        `json:"total_orders"`
	TotalRevenue       float64                      `json:"total_revenue"`
	MonthlyRevenue     float64                      `json:"monthly_revenue"`
	RevenueGrowth      analytics.GrowthRate         `json:"revenue_growth"`
	OrdersGrowth       analytics.GrowthRate         `json:"orders_growth"`
	SalesChart         analytics.SalesSeries        `json:"sales_chart"`
	StatusDistribution analytics.StatusDistribution `json:"status_distribution"`
	TopCities          []entity.CityStats           `json:"top_cities"`
}

// GetDashboardStats returns the stats payload for one chart granularity.
// Results are cached per granularity; a stale in-flight computation is
// discarded when a newer one has started for the same key.
func (s *DashboardService) GetDashboardStats(ctx context.Context, granularity enum.Granularity) *DashboardStats {
	key := cache.Key("dashboard-stats", "granularity="+string(granularity))
	if cached, ok := s.cache.Get(key); ok {
		if stats, ok := cached.(*DashboardStats); ok {
			return stats
		}
	}

	gen := s.cache.Begin(key)
	stats := s.computeStats(ctx, granularity)
	s.cache.Complete(key, gen, stats, "orders", "stats")
	return stats
}

// SalesChart is the sales-analytics view of the stats payload: just the
// tagged series, so the sales area works for sub-admins who cannot see the
// full dashboard.
func (s *DashboardService) SalesChart(ctx context.Context, granularity enum.Granularity) analytics.SalesSeries {
	return s.GetDashboardStats(ctx, granularity).SalesChart
}

// ShippingDistribution is the shipping-overview view of the stats payload:
// just the 5-state status distribution.
func (s *DashboardService) ShippingDistribution(ctx context.Context) analytics.StatusDistribution {
	return s.GetDashboardStats(ctx, enum.GranularityWeekly).StatusDistribution
}

func (s *DashboardService) computeStats(ctx context.Context, granularity enum.Granularity) *DashboardStats {
	now := s.now()
	stats := &DashboardStats{
		TopCities: []entity.CityStats{},
	}

	var orders []entity.Order
	page, err := s.commerce.ListOrders(ctx, gateway.OrderFilter{
		PageFilter: gateway.PageFilter{Page: 1, Limit: aggregateFetchLimit},
	})
	if err != nil {
		log.Printf("dashboard: order fetch failed, using empty feed: %v", err)
	} else {
		orders = page.Orders
		stats.TotalOrders = page.Total
	}

	for i := range orders {
		if orders[i].IsPaid() {
			stats.TotalRevenue += orders[i].Total
		}
	}

	stats.SalesChart = analytics.BuildSalesSeries(orders, granularity, now, s.rng)

	// month-over-month growth against the calendar month boundaries
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	currentRevenue := analytics.PeriodRevenue(orders, monthStart, now)
	previousRevenue := analytics.PeriodRevenue(orders, prevMonthStart, monthStart)
	stats.MonthlyRevenue = currentRevenue
	stats.RevenueGrowth = analytics.Growth(currentRevenue, previousRevenue)

	currentOrders := analytics.PeriodOrderCount(orders, monthStart, now)
	previousOrders := analytics.PeriodOrderCount(orders, prevMonthStart, monthStart)
	stats.OrdersGrowth = analytics.Growth(float64(currentOrders), float64(previousOrders))

	statuses, err := s.shipping.OrderStatuses(ctx)
	if err != nil {
		log.Printf("dashboard: shipping aggregator unavailable, deriving distribution locally: %v", err)
		stats.StatusDistribution = analytics.DistributionFromOrders(orders)
	} else {
		stats.StatusDistribution = analytics.DistributionFromShipments(statuses)
	}

	cities, err := s.commerce.TopCities(ctx, 5)
	if err != nil {
		log.Printf("dashboard: top cities fetch failed, using empty list: %v", err)
	} else {
		stats.TopCities = cities
	}

	return stats
}
