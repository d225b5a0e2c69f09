package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/pkg/pagination"
)

// bindPageFilter extracts the common list-query parameters.
func bindPageFilter(c *gin.Context) gateway.PageFilter {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return gateway.PageFilter{
		Page:   params.Page,
		Limit:  params.PerPage,
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Search: c.Query("search"),
	}
}

// bindOrderFilter extracts order-specific list parameters on top of the
// common page filter.
func bindOrderFilter(c *gin.Context) gateway.OrderFilter {
	filter := gateway.OrderFilter{PageFilter: bindPageFilter(c)}
	if raw := c.Query("status"); raw != "" {
		filter.Status = enum.ParseOrderStatus(raw)
	}
	if raw := c.Query("startDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.StartDate = &t
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.EndDate = &t
		}
	}
	return filter
}
