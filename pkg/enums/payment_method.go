package enums

import "fmt"

// PaymentMethod identifies the payment mechanism picked during checkout.
// Unset is a legitimate value while the buyer has not chosen yet.
type PaymentMethod string

const (
	PaymentMethodUnset PaymentMethod = ""
	PaymentMethodCOD   PaymentMethod = "cash_on_delivery"
	PaymentMethodCard  PaymentMethod = "card"
)

var selectablePaymentMethods = []PaymentMethod{
	PaymentMethodCOD,
	PaymentMethodCard,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsSelectable reports whether the value is a method a buyer can pick.
func (p PaymentMethod) IsSelectable() bool {
	for _, candidate := range selectablePaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a selectable PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range selectablePaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
