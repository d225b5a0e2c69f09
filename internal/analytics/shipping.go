package analytics

import (
	"strings"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// StatusDistribution counts orders per lifecycle state. Every state is always
// present so charts render a stable set of slices.
type StatusDistribution map[enum.OrderStatus]int

func newStatusDistribution() StatusDistribution {
	return StatusDistribution{
		enum.OrderStatusProcessing:  0,
		enum.OrderStatusReadyToShip: 0,
		enum.OrderStatusShipped:     0,
		enum.OrderStatusDelivered:   0,
		enum.OrderStatusCancelled:   0,
	}
}

// MapShipmentStatus folds a raw shipping-aggregator status string onto the
// order lifecycle. Matching is case-insensitive and substring-based because
// the aggregator's vocabulary is wide ("RTO INITIATED", "OUT FOR DELIVERY",
// "PICKUP RESCHEDULED", ...); anything unrecognized counts as processing.
func MapShipmentStatus(raw string) enum.OrderStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "DELIVERED"):
		return enum.OrderStatusDelivered
	case strings.Contains(s, "CANCEL"), strings.Contains(s, "RTO"), strings.Contains(s, "LOST"):
		return enum.OrderStatusCancelled
	case strings.Contains(s, "TRANSIT"), strings.Contains(s, "SHIPPED"),
		strings.Contains(s, "OUT FOR"), strings.Contains(s, "PICKED UP"):
		return enum.OrderStatusShipped
	case strings.Contains(s, "PICKUP"), strings.Contains(s, "AWB"),
		strings.Contains(s, "READY"), strings.Contains(s, "MANIFEST"):
		return enum.OrderStatusReadyToShip
	default:
		return enum.OrderStatusProcessing
	}
}

// DistributionFromShipments builds the 5-state distribution from raw
// aggregator status strings.
func DistributionFromShipments(statuses []string) StatusDistribution {
	dist := newStatusDistribution()
	for _, raw := range statuses {
		dist[MapShipmentStatus(raw)]++
	}
	return dist
}

// DistributionFromOrders derives the same distribution from the orders'
// own status-history tails. Used when the shipping aggregator is down.
func DistributionFromOrders(orders []entity.Order) StatusDistribution {
	dist := newStatusDistribution()
	for i := range orders {
		dist[orders[i].CurrentStatus()]++
	}
	return dist
}
