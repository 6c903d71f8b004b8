package entity

// PaymentMethod is the tender chosen on the payment step.
type PaymentMethod string

const (
	PaymentMethodCard        PaymentMethod = "CB"
	PaymentMethodCash        PaymentMethod = "CASH"
	PaymentMethodContactless PaymentMethod = "CONTACTLESS"
)

// IsValid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodContactless:
		return true
	default:
		return false
	}
}
