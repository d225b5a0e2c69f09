package service

import (
	"context"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// CustomerService handles the customer directory, block toggling and return
// requests.
type CustomerService struct {
	commerce gateway.CommerceGateway
	cache    *cache.Store
}

// NewCustomerService creates a new customer service
func NewCustomerService(commerce gateway.CommerceGateway, cacheStore *cache.Store) *CustomerService {
	return &CustomerService{commerce: commerce, cache: cacheStore}
}

// List returns one page of customers, empty on upstream failure.
func (s *CustomerService) List(ctx context.Context, filter gateway.PageFilter) *gateway.CustomerPage {
	key := cache.Key("customers", pageParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if page, ok := cached.(*gateway.CustomerPage); ok {
			return page
		}
	}

	gen := s.cache.Begin(key)
	page, err := s.commerce.ListCustomers(ctx, filter)
	if err != nil {
		return &gateway.CustomerPage{Customers: []entity.Customer{}}
	}
	s.cache.Complete(key, gen, page, "customers")
	return page
}

// SetBlocked toggles a customer's blocked flag.
func (s *CustomerService) SetBlocked(ctx context.Context, id string, blocked bool) error {
	if err := s.commerce.SetCustomerBlocked(ctx, id, blocked); err != nil {
		return err
	}
	s.cache.Invalidate("customers")
	return nil
}

// ListReturns returns pending return requests, empty on upstream failure.
func (s *CustomerService) ListReturns(ctx context.Context, filter gateway.PageFilter) []entity.ReturnRequest {
	key := cache.Key("returns", pageParts(filter)...)
	if cached, ok := s.cache.Get(key); ok {
		if returns, ok := cached.([]entity.ReturnRequest); ok {
			return returns
		}
	}

	gen := s.cache.Begin(key)
	returns, err := s.commerce.ListReturns(ctx, filter)
	if err != nil {
		return []entity.ReturnRequest{}
	}
	s.cache.Complete(key, gen, returns, "returns")
	return returns
}

// ResolveReturn accepts or rejects a return request.
func (s *CustomerService) ResolveReturn(ctx context.Context, id, resolution string) error {
	if resolution != "accepted" && resolution != "rejected" {
		return apperror.NewBadRequestError("resolution must be accepted or rejected")
	}
	if err := s.commerce.ResolveReturn(ctx, id, resolution); err != nil {
		return err
	}
	// accepting a return touches the order feed too
	s.cache.Invalidate("returns", "orders", "stats")
	return nil
}
