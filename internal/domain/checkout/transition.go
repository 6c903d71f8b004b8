package checkout

import (
	"fmt"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/loyalty"

	"github.com/shopspring/decimal"
)

// Transition applies e to s. On error the returned session is s unchanged.
// The input session is never mutated.
func Transition(s Session, e Event) (Session, error) {
	next := s.Clone()

	var err error
	switch ev := e.(type) {
	case PayRequested:
		err = onPayRequested(&next, ev)
	case CustomerSelected:
		err = onCustomerSelected(&next, ev)
	case CustomerCleared:
		err = onCustomerCleared(&next)
	case DiscountConfirmed:
		err = onDiscountConfirmed(&next, ev)
	case CustomerSkipped:
		err = onCustomerSkipped(&next)
	case PaymentChosen:
		err = onPaymentChosen(&next, ev)
	case SettlementSucceeded:
		err = onSettlementSucceeded(&next, ev)
	case SettlementFailed:
		err = onSettlementFailed(&next, ev)
	case CancelRequested:
		err = onCancelRequested(&next)
	case ReceiptClosed:
		err = onReceiptClosed(&next)
	default:
		err = domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf("unknown event %T", e))
	}

	if err != nil {
		return s, err
	}

	next.UpdatedAt = time.Now()

	return next, nil
}

func invalid(s *Session, e Event) error {
	return domainerrors.ErrInvalidTransition.WithDetails(
		fmt.Sprintf("%s not allowed in %s", EventName(e), s.State),
	)
}

func onPayRequested(s *Session, ev PayRequested) error {
	if s.State != StateCartEditing && s.State != StateCancelled {
		return domainerrors.ErrCheckoutInProgress
	}
	if ev.Cart.IsEmpty() {
		return domainerrors.NewValidationError("cart", "cannot check out an empty cart")
	}

	s.Draft = entity.NewTransactionDraft(s.TableNumber, ev.SalespersonID, ev.Cart)
	s.Config = ev.Config.Normalized()
	s.State = StateAwaitingCustomerDecision
	s.LastError = ""

	return nil
}

func onCustomerSelected(s *Session, ev CustomerSelected) error {
	if s.State != StateAwaitingCustomerDecision {
		return invalid(s, ev)
	}

	s.Draft.Customer = entity.NewCustomerSnapshot(ev.Customer)
	s.LastError = ""

	return nil
}

func onCustomerCleared(s *Session) error {
	if s.State != StateAwaitingCustomerDecision {
		return invalid(s, CustomerCleared{})
	}

	s.Draft.Customer = nil
	s.LastError = ""

	return nil
}

func onDiscountConfirmed(s *Session, ev DiscountConfirmed) error {
	if s.State != StateAwaitingCustomerDecision {
		return invalid(s, ev)
	}

	quote := Quote(*s, ev.Discount)
	s.Draft.PointsRedeemed = quote.PointsToRedeem
	s.Draft.DiscountAmount = quote.TotalDiscount
	s.Draft.DiscountReason = quote.DiscountReason
	s.Draft.FinalTotal = quote.FinalTotal
	s.State = StateAwaitingPaymentMethod
	s.LastError = ""

	return nil
}

func onCustomerSkipped(s *Session) error {
	if s.State != StateAwaitingCustomerDecision {
		return invalid(s, CustomerSkipped{})
	}

	s.Draft.Customer = nil
	s.Draft.PointsRedeemed = 0
	s.Draft.DiscountAmount = decimal.Zero
	s.Draft.DiscountReason = ""
	s.Draft.FinalTotal = s.Draft.Subtotal
	s.State = StateAwaitingPaymentMethod
	s.LastError = ""

	return nil
}

func onPaymentChosen(s *Session, ev PaymentChosen) error {
	if s.State != StateAwaitingPaymentMethod {
		return invalid(s, ev)
	}
	if !ev.Method.IsValid() {
		return domainerrors.NewValidationError("payment_method", fmt.Sprintf("unsupported payment method %q", ev.Method))
	}

	s.Draft.PaymentMethod = ev.Method
	s.State = StateSettling
	s.LastError = ""

	return nil
}

func onSettlementSucceeded(s *Session, ev SettlementSucceeded) error {
	if s.State != StateSettling {
		return invalid(s, ev)
	}
	if ev.Order == nil {
		return domainerrors.ErrInvalidTransition.WithDetails("settlement succeeded without a certified order")
	}

	order := *ev.Order
	order.Items = append([]entity.CertifiedOrderLine(nil), ev.Order.Items...)
	s.Draft.ServerOrder = &order
	s.Draft.PointsEarned = max(ev.PointsEarned, 0)
	s.Draft.Warning = ev.Warning
	s.State = StateReceiptReady
	s.LastError = ""

	return nil
}

func onSettlementFailed(s *Session, ev SettlementFailed) error {
	if s.State != StateSettling {
		return invalid(s, ev)
	}

	s.State = StateAwaitingPaymentMethod
	s.LastError = ev.Message
	if s.LastError == "" {
		s.LastError = domainerrors.DefaultSettlementMessage
	}

	return nil
}

func onCancelRequested(s *Session) error {
	if !s.State.Cancellable() {
		return invalid(s, CancelRequested{})
	}

	s.Draft = nil
	s.State = StateCancelled
	s.LastError = ""

	return nil
}

func onReceiptClosed(s *Session) error {
	if s.State != StateReceiptReady {
		return invalid(s, ReceiptClosed{})
	}

	s.Draft = nil
	s.State = StateCartEditing
	s.LastError = ""

	return nil
}

// Quote previews the discount breakdown for the session's draft without changing it.
func Quote(s Session, discount entity.DiscountState) loyalty.Quote {
	if s.Draft == nil {
		return loyalty.Calculate(loyalty.Input{Config: s.Config, Discount: discount})
	}

	var customer *entity.Customer
	if s.Draft.Customer != nil {
		c := s.Draft.Customer.Customer
		c.LoyaltyPoints = s.Draft.Customer.PreviousPoints
		customer = &c
	}

	return loyalty.Calculate(loyalty.Input{
		Subtotal: s.Draft.Subtotal,
		Customer: customer,
		Config:   s.Config,
		Discount: discount,
	})
}
