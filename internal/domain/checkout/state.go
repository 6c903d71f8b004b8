// Package checkout holds the checkout state machine: an explicit state plus a single
// transition function over a closed set of events.
package checkout

import (
	"time"

	"pos/internal/domain/entity"
)

// State is the step a table's checkout is in.
type State string

const (
	StateCartEditing              State = "CART_EDITING"
	StateAwaitingCustomerDecision State = "AWAITING_CUSTOMER_DECISION"
	StateAwaitingPaymentMethod    State = "AWAITING_PAYMENT_METHOD"
	StateSettling                 State = "SETTLING"
	StateReceiptReady             State = "RECEIPT_READY"
	StateCancelled                State = "CANCELLED"
)

// InFlight reports whether the table is locked by this checkout.
func (s State) InFlight() bool {
	switch s {
	case StateAwaitingCustomerDecision, StateAwaitingPaymentMethod, StateSettling, StateReceiptReady:
		return true
	default:
		return false
	}
}

// Cancellable reports whether a cancel request is accepted in this state.
func (s State) Cancellable() bool {
	switch s {
	case StateCartEditing, StateAwaitingCustomerDecision, StateAwaitingPaymentMethod:
		return true
	default:
		return false
	}
}

// Session is a table's checkout. The zero draft means no transaction is in flight.
type Session struct {
	TableNumber int                      `json:"table_number"`
	State       State                    `json:"state"`
	Draft       *entity.TransactionDraft `json:"draft,omitempty"`
	Config      entity.LoyaltyConfig     `json:"loyalty_config"`
	LastError   string                   `json:"last_error,omitempty"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// NewSession returns the pre-checkout session of a table.
func NewSession(tableNumber int) Session {
	return Session{
		TableNumber: tableNumber,
		State:       StateCartEditing,
	}
}

// Clone returns a copy that shares no mutable data with s.
func (s Session) Clone() Session {
	s.Draft = s.Draft.Clone()

	return s
}
