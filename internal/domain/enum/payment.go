package enum

import "strings"

// PaymentMethod identifies how an order was paid. The set is closed: anything
// the commerce API reports outside the known methods is folded into Other so
// per-method aggregates always have a defined home.
type PaymentMethod string

const (
	PaymentMethodCashfree   PaymentMethod = "cashfree"
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
	PaymentMethodOther      PaymentMethod = "other"
)

// KnownPaymentMethods lists the methods tracked individually in analytics,
// in the order charts render them. Other is intentionally excluded.
var KnownPaymentMethods = []PaymentMethod{
	PaymentMethodCashfree,
	PaymentMethodCOD,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodUPI,
	PaymentMethodNetBanking,
}

// NormalizePaymentMethod maps a raw method string (any casing, hyphen or
// underscore separated) to a known method, folding unknowns into Other.
func NormalizePaymentMethod(raw string) PaymentMethod {
	m := PaymentMethod(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	for _, known := range KnownPaymentMethods {
		if m == known {
			return known
		}
	}
	return PaymentMethodOther
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus identifies the capture state of an order's payment.
// Only paid orders count toward sales aggregates.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ParsePaymentStatus maps a raw status string to a PaymentStatus. Unknown
// values are treated as pending, which keeps them out of sales aggregates.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusFailed:
		return PaymentStatusFailed
	case PaymentStatusRefunded:
		return PaymentStatusRefunded
	}
	return PaymentStatusPending
}

func (s PaymentStatus) String() string {
	return string(s)
}
