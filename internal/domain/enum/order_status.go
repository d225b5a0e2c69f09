package enum

// OrderStatus represents the fulfilment status of an order. The gateway never
// invents transitions on its own; it validates a requested transition and
// forwards it to the commerce API.
type OrderStatus string

const (
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusReadyToShip OrderStatus = "ready-to-ship"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCancelled   OrderStatus = "cancelled"
)

// AllOrderStatuses lists every recognised status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusReadyToShip,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps a raw status string to a known OrderStatus.
// Unrecognised values default to processing so downstream aggregation always
// works on a closed set.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case OrderStatusProcessing, OrderStatusReadyToShip, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s)
	}
	return OrderStatusProcessing
}

// IsValid reports whether the status is one of the recognised values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusReadyToShip, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status update request is allowed.
// The forward path is processing -> ready-to-ship -> shipped -> delivered;
// cancelled is reachable from processing or ready-to-ship only.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusProcessing:
		return next == OrderStatusReadyToShip || next == OrderStatusCancelled
	case OrderStatusReadyToShip:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		// delivered and cancelled are terminal
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}
