package checkout

import (
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart() entity.Cart {
	var cart entity.Cart
	cart.Add(entity.Product{ID: "p1", Name: "Burger", UnitPrice: decimal.RequireFromString("12.50")})
	cart.Add(entity.Product{ID: "p1", Name: "Burger", UnitPrice: decimal.RequireFromString("12.50")})
	cart.Add(entity.Product{ID: "p2", Name: "Soda", UnitPrice: decimal.RequireFromString("25")})

	return cart
}

func mustTransition(t *testing.T, s Session, e Event) Session {
	t.Helper()

	next, err := Transition(s, e)
	require.NoError(t, err)

	return next
}

func startedSession(t *testing.T) Session {
	t.Helper()

	return mustTransition(t, NewSession(4), PayRequested{
		SalespersonID: "sp-1",
		Cart:          testCart(),
		Config:        entity.DefaultLoyaltyConfig(),
	})
}

func TestTransition_PayRequestedSeedsDraft(t *testing.T) {
	s := startedSession(t)

	assert.Equal(t, StateAwaitingCustomerDecision, s.State)
	require.NotNil(t, s.Draft)
	assert.Equal(t, 4, s.Draft.TableNumber)
	assert.Equal(t, "sp-1", s.Draft.SalespersonID)
	assert.True(t, s.Draft.Subtotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Draft.FinalTotal.Equal(decimal.NewFromInt(50)))
}

func TestTransition_PayRequestedCopiesCart(t *testing.T) {
	cart := testCart()
	s := mustTransition(t, NewSession(1), PayRequested{Cart: cart, Config: entity.DefaultLoyaltyConfig()})

	cart.Add(entity.Product{ID: "p3", Name: "Fries", UnitPrice: decimal.NewFromInt(4)})
	cart.Remove("p1")

	assert.Len(t, s.Draft.Cart.Lines, 2)
	assert.True(t, s.Draft.Subtotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Draft.Cart.Total().Equal(decimal.NewFromInt(50)))
}

func TestTransition_PayRequestedEmptyCart(t *testing.T) {
	s := NewSession(1)

	next, err := Transition(s, PayRequested{Config: entity.DefaultLoyaltyConfig()})

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, s, next)
}

func TestTransition_SecondPayRefused(t *testing.T) {
	s := startedSession(t)

	next, err := Transition(s, PayRequested{Cart: testCart()})

	require.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
	assert.Equal(t, s, next)
}

func TestTransition_ConfirmWithCustomerAndDiscount(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1", Name: "Alice", LoyaltyPoints: 250}})
	require.NotNil(t, s.Draft.Customer)
	assert.Equal(t, 250, s.Draft.Customer.PreviousPoints)

	s = mustTransition(t, s, DiscountConfirmed{Discount: entity.DiscountState{PointsToRedeem: 200}})

	assert.Equal(t, StateAwaitingPaymentMethod, s.State)
	assert.Equal(t, 200, s.Draft.PointsRedeemed)
	assert.True(t, s.Draft.DiscountAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.Draft.FinalTotal.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "Loyalty: 200 pts (-10.00€)", s.Draft.DiscountReason)
}

func TestTransition_SkipClearsCustomerAndDiscount(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1", LoyaltyPoints: 500}})

	s = mustTransition(t, s, CustomerSkipped{})

	assert.Equal(t, StateAwaitingPaymentMethod, s.State)
	assert.Nil(t, s.Draft.Customer)
	assert.True(t, s.Draft.DiscountAmount.IsZero())
	assert.Empty(t, s.Draft.DiscountReason)
	assert.True(t, s.Draft.FinalTotal.Equal(s.Draft.Subtotal))
}

func TestTransition_CustomerClearedOnlyOnCustomerStep(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1"}})
	s = mustTransition(t, s, CustomerCleared{})
	assert.Nil(t, s.Draft.Customer)

	s = mustTransition(t, s, CustomerSkipped{})
	_, err := Transition(s, CustomerSelected{Customer: entity.Customer{ID: "c2"}})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestTransition_PaymentFreezesDraft(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSkipped{})

	_, err := Transition(s, PaymentChosen{Method: "BITCOIN"})
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	s = mustTransition(t, s, PaymentChosen{Method: entity.PaymentMethodCash})
	assert.Equal(t, StateSettling, s.State)
	assert.Equal(t, entity.PaymentMethodCash, s.Draft.PaymentMethod)

	for _, e := range []Event{
		PayRequested{Cart: testCart()},
		CustomerSelected{Customer: entity.Customer{ID: "c1"}},
		CustomerCleared{},
		DiscountConfirmed{},
		CustomerSkipped{},
		PaymentChosen{Method: entity.PaymentMethodCard},
		CancelRequested{},
		ReceiptClosed{},
	} {
		next, err := Transition(s, e)
		assert.Error(t, err, EventName(e))
		assert.Equal(t, s, next, EventName(e))
	}
}

func TestTransition_SettlementFailureReopensPayment(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1", LoyaltyPoints: 100}})
	s = mustTransition(t, s, DiscountConfirmed{Discount: entity.DiscountState{Type: entity.DiscountTypePercent, Value: "10"}})
	s = mustTransition(t, s, PaymentChosen{Method: entity.PaymentMethodCard})

	failed := mustTransition(t, s, SettlementFailed{Message: "Product out of stock"})

	assert.Equal(t, StateAwaitingPaymentMethod, failed.State)
	assert.Equal(t, "Product out of stock", failed.LastError)
	assert.Equal(t, s.Draft.Cart, failed.Draft.Cart)
	assert.True(t, failed.Draft.DiscountAmount.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "c1", failed.Draft.CustomerID())

	generic := mustTransition(t, s, SettlementFailed{})
	assert.Equal(t, domainerrors.DefaultSettlementMessage, generic.LastError)

	retried := mustTransition(t, failed, PaymentChosen{Method: entity.PaymentMethodContactless})
	assert.Equal(t, StateSettling, retried.State)
	assert.Empty(t, retried.LastError)
}

func TestTransition_SettlementSuccessAndClose(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSkipped{})
	s = mustTransition(t, s, PaymentChosen{Method: entity.PaymentMethodCash})

	_, err := Transition(s, SettlementSucceeded{})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	order := &entity.CertifiedOrder{ID: "o-1", TotalAmount: decimal.RequireFromString("47.50")}
	s = mustTransition(t, s, SettlementSucceeded{Order: order, PointsEarned: -3})

	assert.Equal(t, StateReceiptReady, s.State)
	assert.Equal(t, "o-1", s.Draft.ServerOrder.ID)
	assert.Zero(t, s.Draft.PointsEarned)

	order.ID = "mutated"
	assert.Equal(t, "o-1", s.Draft.ServerOrder.ID)

	s = mustTransition(t, s, ReceiptClosed{})
	assert.Equal(t, StateCartEditing, s.State)
	assert.Nil(t, s.Draft)
}

func TestTransition_CancelFromPreSettlementStates(t *testing.T) {
	started := startedSession(t)
	awaitingPayment := mustTransition(t, started, CustomerSkipped{})

	for _, s := range []Session{NewSession(4), started, awaitingPayment} {
		next, err := Transition(s, CancelRequested{})
		require.NoError(t, err, s.State)
		assert.Equal(t, StateCancelled, next.State)
		assert.Nil(t, next.Draft)
		assert.False(t, next.State.InFlight())
	}
}

func TestTransition_CancelRefusedAfterSettlementStarts(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSkipped{})
	s = mustTransition(t, s, PaymentChosen{Method: entity.PaymentMethodCash})
	s = mustTransition(t, s, SettlementSucceeded{Order: &entity.CertifiedOrder{ID: "o-1"}})

	_, err := Transition(s, CancelRequested{})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	s := startedSession(t)
	before := s.Clone()

	_ = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1", LoyaltyPoints: 300}})

	assert.Equal(t, before, s)
	assert.Nil(t, s.Draft.Customer)
}

func TestQuote_UsesPreviousPoints(t *testing.T) {
	s := startedSession(t)
	s = mustTransition(t, s, CustomerSelected{Customer: entity.Customer{ID: "c1", LoyaltyPoints: 250}})
	s.Draft.Customer.Customer.LoyaltyPoints = 50

	q := Quote(s, entity.DiscountState{PointsToRedeem: 200})

	assert.Equal(t, 200, q.MaxRedeemable)
	assert.Equal(t, 200, q.PointsToRedeem)
}
