package service

import (
	"context"
	"log"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
)

// TaxService fronts the GST summary helper. A helper failure yields the
// all-zero summary so the finance overview always renders.
type TaxService struct {
	tax   gateway.TaxGateway
	cache *cache.Store
}

// NewTaxService creates a new tax service
func NewTaxService(tax gateway.TaxGateway, cacheStore *cache.Store) *TaxService {
	return &TaxService{tax: tax, cache: cacheStore}
}

// Summary returns the GST overview, zero-valued when the helper is down.
func (s *TaxService) Summary(ctx context.Context) *entity.GSTSummary {
	key := cache.Key("gst-summary")
	if cached, ok := s.cache.Get(key); ok {
		if summary, ok := cached.(*entity.GSTSummary); ok {
			return summary
		}
	}

	gen := s.cache.Begin(key)
	summary, err := s.tax.Summary(ctx)
	if err != nil {
		log.Printf("tax: GST helper unavailable, serving zero summary: %v", err)
		return &entity.GSTSummary{MonthlyReport: []entity.GSTMonthly{}}
	}
	s.cache.Complete(key, gen, summary, "gst", "stats")
	return summary
}
