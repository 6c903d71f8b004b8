package checkout

import (
	"pos/internal/domain/entity"
)

// Event is an operator action or a resolved settlement outcome.
type Event interface {
	eventName() string
}

// PayRequested starts a checkout from the table's current cart.
type PayRequested struct {
	SalespersonID string
	Cart          entity.Cart
	Config        entity.LoyaltyConfig
}

// CustomerSelected associates a customer with the draft.
type CustomerSelected struct {
	Customer entity.Customer
}

// CustomerCleared removes the associated customer.
type CustomerCleared struct{}

// DiscountConfirmed commits the discount inputs into the draft.
// Points must already have been redeemed with the directory.
type DiscountConfirmed struct {
	Discount entity.DiscountState
}

// CustomerSkipped bypasses the customer step with no customer and no discount.
type CustomerSkipped struct{}

// PaymentChosen freezes the draft and starts settlement.
type PaymentChosen struct {
	Method entity.PaymentMethod
}

// SettlementSucceeded carries the certified order and the reconciled loyalty delta.
type SettlementSucceeded struct {
	Order        *entity.CertifiedOrder
	PointsEarned int
	Warning      string
}

// SettlementFailed re-opens the payment step with the operator message.
type SettlementFailed struct {
	Message string
}

// CancelRequested discards the draft.
type CancelRequested struct{}

// ReceiptClosed ends the transaction.
type ReceiptClosed struct{}

func (PayRequested) eventName() string        { return "pay_requested" }
func (CustomerSelected) eventName() string    { return "customer_selected" }
func (CustomerCleared) eventName() string     { return "customer_cleared" }
func (DiscountConfirmed) eventName() string   { return "discount_confirmed" }
func (CustomerSkipped) eventName() string     { return "customer_skipped" }
func (PaymentChosen) eventName() string       { return "payment_chosen" }
func (SettlementSucceeded) eventName() string { return "settlement_succeeded" }
func (SettlementFailed) eventName() string    { return "settlement_failed" }
func (CancelRequested) eventName() string     { return "cancel_requested" }
func (ReceiptClosed) eventName() string       { return "receipt_closed" }

// EventName returns a stable name for logging.
func EventName(e Event) string {
	if e == nil {
		return ""
	}

	return e.eventName()
}
