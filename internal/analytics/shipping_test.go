package analytics

import (
	"testing"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

func TestMapShipmentStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want enum.OrderStatus
	}{
		{"DELIVERED", enum.OrderStatusDelivered},
		{"delivered", enum.OrderStatusDelivered},
		{"OUT FOR DELIVERY", enum.OrderStatusShipped},
		{"IN TRANSIT", enum.OrderStatusShipped},
		{"Shipped", enum.OrderStatusShipped},
		{"PICKED UP", enum.OrderStatusShipped},
		{"PICKUP SCHEDULED", enum.OrderStatusReadyToShip},
		{"AWB ASSIGNED", enum.OrderStatusReadyToShip},
		{"MANIFEST GENERATED", enum.OrderStatusReadyToShip},
		{"CANCELED", enum.OrderStatusCancelled},
		{"CANCELLATION REQUESTED", enum.OrderStatusCancelled},
		{"RTO INITIATED", enum.OrderStatusCancelled},
		{"NEW", enum.OrderStatusProcessing},
		{"", enum.OrderStatusProcessing},
		{"SOMETHING UNEXPECTED", enum.OrderStatusProcessing},
	}
	for _, tc := range tests {
		if got := MapShipmentStatus(tc.raw); got != tc.want {
			t.Errorf("MapShipmentStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDistributionFromShipmentsCoversAllStates(t *testing.T) {
	dist := DistributionFromShipments([]string{"DELIVERED", "IN TRANSIT", "NEW"})

	if len(dist) != 5 {
		t.Fatalf("distribution has %d states, want 5", len(dist))
	}
	if dist[enum.OrderStatusDelivered] != 1 || dist[enum.OrderStatusShipped] != 1 ||
		dist[enum.OrderStatusProcessing] != 1 {
		t.Errorf("distribution = %v", dist)
	}
	if dist[enum.OrderStatusCancelled] != 0 || dist[enum.OrderStatusReadyToShip] != 0 {
		t.Errorf("untouched states must be present at zero, got %v", dist)
	}
}

func TestDistributionFromOrdersUsesHistoryTail(t *testing.T) {
	orders := []entity.Order{
		{StatusHistory: []entity.StatusChange{
			{Status: enum.OrderStatusProcessing},
			{Status: enum.OrderStatusReadyToShip},
			{Status: enum.OrderStatusShipped},
		}},
		{StatusHistory: []entity.StatusChange{
			{Status: enum.OrderStatusProcessing},
			{Status: enum.OrderStatusCancelled},
		}},
		{}, // no history counts as processing
	}

	dist := DistributionFromOrders(orders)
	if dist[enum.OrderStatusShipped] != 1 || dist[enum.OrderStatusCancelled] != 1 ||
		dist[enum.OrderStatusProcessing] != 1 {
		t.Errorf("distribution = %v", dist)
	}
}
