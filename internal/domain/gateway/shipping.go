package gateway

import "context"

// ShippingGateway is the shipping aggregator (Shiprocket). It only exposes
// the raw status strings of in-flight shipments; the shipping service maps
// them onto the order lifecycle.
type ShippingGateway interface {
	OrderStatuses(ctx context.Context) ([]string, error)
}
