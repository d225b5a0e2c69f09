package entity

import (
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// Order is the gateway's read-model of a commerce API order. It is produced
// fully defaulted by the upstream boundary parser, so internal logic never
// needs nil-checks on it.
type Order struct {
	ID            string         `json:"id"`
	InvoiceNo     string         `json:"invoice_no"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	City          string         `json:"city"`
	Total         float64        `json:"total"`
	Payment       Payment        `json:"payment"`
	Items         []OrderItem    `json:"items"`
	StatusHistory []StatusChange `json:"status_history"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Payment holds the capture state of an order's payment.
type Payment struct {
	Method enum.PaymentMethod `json:"method"`
	Status enum.PaymentStatus `json:"status"`
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	Status    enum.OrderStatus `json:"status"`
	ChangedAt time.Time        `json:"changed_at"`
}

// CurrentStatus returns the last entry of the status history, defaulting to
// processing for orders the commerce API returned without any history.
func (o *Order) CurrentStatus() enum.OrderStatus {
	if len(o.StatusHistory) == 0 {
		return enum.OrderStatusProcessing
	}
	return o.StatusHistory[len(o.StatusHistory)-1].Status
}

// IsPaid reports whether the order counts toward sales aggregates.
func (o *Order) IsPaid() bool {
	return o.Payment.Status == enum.PaymentStatusPaid
}
