package service

import (
	"context"
	"strconv"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// OrderService handles order listing and lifecycle transitions. Transitions
// are guarded here before calling upstream, so an impossible transition never
// leaves the gateway; successful mutations invalidate every cached read the
// order feed contributes to.
type OrderService struct {
	commerce gateway.CommerceGateway
	cache    *cache.Store
}

// NewOrderService creates a new order service
func NewOrderService(commerce gateway.CommerceGateway, cacheStore *cache.Store) *OrderService {
	return &OrderService{commerce: commerce, cache: cacheStore}
}

// List returns one page of orders. On upstream failure the page degrades to
// empty so order tables always render.
func (s *OrderService) List(ctx context.Context, filter gateway.OrderFilter) *gateway.OrderPage {
	key := cache.Key("orders", orderFilterParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if page, ok := cached.(*gateway.OrderPage); ok {
			return page
		}
	}

	gen := s.cache.Begin(key)
	page, err := s.commerce.ListOrders(ctx, filter)
	if err != nil {
		return &gateway.OrderPage{Orders: []entity.Order{}, Page: filter.Page, Limit: filter.Limit}
	}
	s.cache.Complete(key, gen, page, "orders")
	return page
}

// Get returns a single order. Unlike list queries this surfaces errors, since
// the detail view has no meaningful empty state for a missing order.
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.commerce.GetOrder(ctx, id)
}

// UpdateStatus advances an order along the lifecycle. The requested
// transition must be legal from the order's current status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status enum.OrderStatus) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("unknown order status: " + string(status))
	}

	order, err := s.commerce.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	current := order.CurrentStatus()
	if !current.CanTransitionTo(status) {
		return apperror.NewBadRequestError(
			"cannot move order from " + string(current) + " to " + string(status))
	}

	if err := s.commerce.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}

	// the order feed and every aggregate derived from it are now stale
	s.cache.Invalidate("orders", "stats")
	return nil
}

// Cancel is the cancellation shorthand; the same transition rules apply.
func (s *OrderService) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, enum.OrderStatusCancelled)
}

// TopCities returns the per-city order aggregates. Like the other aggregate
// queries it degrades to an empty list on upstream failure.
func (s *OrderService) TopCities(ctx context.Context, limit int) []entity.CityStats {
	if limit < 1 {
		limit = 5
	}
	key := cache.Key("cities", "limit="+strconv.Itoa(limit))
	if cached, ok := s.cache.Get(key); ok {
		if cities, ok := cached.([]entity.CityStats); ok {
			return cities
		}
	}

	gen := s.cache.Begin(key)
	cities, err := s.commerce.TopCities(ctx, limit)
	if err != nil {
		return []entity.CityStats{}
	}
	if cities == nil {
		cities = []entity.CityStats{}
	}
	s.cache.Complete(key, gen, cities, "stats")
	return cities
}

func orderFilterParts(filter gateway.OrderFilter) []string {
	parts := pageParts(filter.PageFilter)
	if filter.Status != "" {
		parts = append(parts, "status="+string(filter.Status))
	}
	if filter.StartDate != nil {
		parts = append(parts, "startDate="+filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		parts = append(parts, "endDate="+filter.EndDate.Format("2006-01-02"))
	}
	return parts
}
