package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/checkout"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/loyalty"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// checkoutService implements the CheckoutUsecase interface.
// Each step loads the table's session, applies one transition and saves it under the table lock.
type checkoutService struct {
	tableRepo   repository.TableRepository
	sessionRepo repository.SessionRepository
	customers   usecase.CustomerUsecase
	settlement  usecase.SettlementUsecase
	receipts    service.ReceiptCodeService
	locks       *TableLocks
	logger      *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	tableRepo repository.TableRepository,
	sessionRepo repository.SessionRepository,
	customers usecase.CustomerUsecase,
	settlement usecase.SettlementUsecase,
	receipts service.ReceiptCodeService,
	locks *TableLocks,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		tableRepo:   tableRepo,
		sessionRepo: sessionRepo,
		customers:   customers,
		settlement:  settlement,
		receipts:    receipts,
		locks:       locks,
		logger:      logger,
	}
}

// Pay starts a checkout from the table's current cart
func (s *checkoutService) Pay(ctx context.Context, tableNumber int, salespersonID string) (*checkout.Session, error) {
	if err := validateTableNumber(tableNumber); err != nil {
		return nil, err
	}
	if strings.TrimSpace(salespersonID) == "" {
		return nil, domainerrors.NewValidationError("salesperson_id", "is required")
	}

	cfg := s.customers.LoyaltyConfig(ctx)

	unlock := s.locks.Lock(tableNumber)
	defer unlock()

	table, err := s.tableRepo.Find(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table")
	}

	session, err := s.sessionRepo.Get(ctx, tableNumber)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(err, "failed to load checkout session")
		}
		session = checkout.NewSession(tableNumber)
	}

	return s.apply(ctx, session, checkout.PayRequested{
		SalespersonID: salespersonID,
		Cart:          table.Cart,
		Config:        cfg,
	})
}

// GetSession returns the in-flight checkout of a table
func (s *checkoutService) GetSession(ctx context.Context, tableNumber int) (*checkout.Session, error) {
	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// ListSessions returns every in-flight checkout ordered by table number
func (s *checkoutService) ListSessions(ctx context.Context) ([]checkout.Session, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkouts")
	}

	slices.SortFunc(sessions, func(a, b checkout.Session) int {
		return cmp.Compare(a.TableNumber, b.TableNumber)
	})

	return sessions, nil
}

// SelectCustomer associates a directory customer with the draft
func (s *checkoutService) SelectCustomer(ctx context.Context, tableNumber int, customerID string) (*checkout.Session, error) {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.step(ctx, tableNumber, checkout.CustomerSelected{Customer: *customer})
}

// ClearCustomer removes the associated customer
func (s *checkoutService) ClearCustomer(ctx context.Context, tableNumber int) (*checkout.Session, error) {
	return s.step(ctx, tableNumber, checkout.CustomerCleared{})
}

// Quote previews the discount breakdown without changing the draft
func (s *checkoutService) Quote(ctx context.Context, tableNumber int, discount entity.DiscountState) (*loyalty.Quote, error) {
	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if session.State != checkout.StateAwaitingCustomerDecision {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("quote is only available on the customer step")
	}

	quote := checkout.Quote(session, discount).Rounded()

	return &quote, nil
}

// Confirm redeems the requested points and commits the discount into the draft.
// The table lock is held across the redemption so a retry cannot debit points twice.
func (s *checkoutService) Confirm(ctx context.Context, tableNumber int, discount entity.DiscountState) (*checkout.Session, error) {
	unlock := s.locks.Lock(tableNumber)
	defer unlock()

	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if session.State != checkout.StateAwaitingCustomerDecision {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("confirm is only available on the customer step")
	}

	// Points only count when a customer is attached; the calculator ignores them otherwise.
	if session.Draft.Customer != nil && discount.PointsToRedeem > 0 {
		granted, err := s.customers.Redeem(ctx, session.Draft.Customer, discount.PointsToRedeem, session.Config)
		if err != nil {
			return nil, err
		}

		if expected := checkout.Quote(session, discount).LoyaltyDiscount; !granted.Equal(expected) {
			s.loggerFrom(ctx).Warn("Backend redemption amount differs from local quote",
				"table", tableNumber,
				"customer_id", session.Draft.Customer.Customer.ID,
				"points", discount.PointsToRedeem,
				"expected", expected.StringFixed(2),
				"granted", granted.StringFixed(2),
			)
		}
	}

	return s.apply(ctx, session, checkout.DiscountConfirmed{Discount: discount})
}

// Skip moves to payment with no customer and no discount
func (s *checkoutService) Skip(ctx context.Context, tableNumber int) (*checkout.Session, error) {
	return s.step(ctx, tableNumber, checkout.CustomerSkipped{})
}

// ChoosePayment freezes the draft and settles it with the backend
func (s *checkoutService) ChoosePayment(ctx context.Context, tableNumber int, method entity.PaymentMethod) (*checkout.Session, error) {
	settling, err := s.step(ctx, tableNumber, checkout.PaymentChosen{Method: method})
	if err != nil {
		return nil, err
	}

	// The session must leave SETTLING whatever happens to the caller.
	settleCtx := context.WithoutCancel(ctx)
	result, settleErr := s.settlement.Settle(settleCtx, settling.Draft)

	var outcome checkout.Event
	if settleErr != nil {
		outcome = checkout.SettlementFailed{Message: settlementMessage(settleErr)}
	} else {
		succeeded := checkout.SettlementSucceeded{Order: result.Order, PointsEarned: result.PointsEarned}
		if result.Warning != nil {
			succeeded.Warning = result.Warning.Error()
		}
		outcome = succeeded
	}

	session, err := s.step(settleCtx, tableNumber, outcome)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record settlement outcome")
	}

	if settleErr != nil {
		return session, settleErr
	}

	return session, nil
}

// Cancel discards the draft
func (s *checkoutService) Cancel(ctx context.Context, tableNumber int) error {
	if err := validateTableNumber(tableNumber); err != nil {
		return err
	}

	unlock := s.locks.Lock(tableNumber)
	defer unlock()

	session, err := s.sessionRepo.Get(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load checkout session")
	}

	if _, err := checkout.Transition(session, checkout.CancelRequested{}); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, tableNumber); err != nil {
		return errors.Wrap(err, "failed to delete checkout session")
	}

	s.loggerFrom(ctx).Info("Checkout cancelled", slog.Int("table", tableNumber), slog.String("from", string(session.State)))

	return nil
}

// Receipt returns the receipt of a settled checkout
func (s *checkoutService) Receipt(ctx context.Context, tableNumber int) (*usecase.Receipt, error) {
	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if session.State != checkout.StateReceiptReady || session.Draft.ServerOrder == nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("receipt is not ready")
	}

	receipt := buildReceipt(session.Draft)

	qr, err := s.receipts.GenerateReceiptQR(receipt.OrderID, receipt.TotalAmount)
	if err != nil {
		s.loggerFrom(ctx).Warn("Failed to generate receipt QR code", "error", err)
	} else {
		receipt.QRCode = qr
	}

	return receipt, nil
}

// CloseReceipt ends the transaction and discards the draft
func (s *checkoutService) CloseReceipt(ctx context.Context, tableNumber int) error {
	if err := validateTableNumber(tableNumber); err != nil {
		return err
	}

	unlock := s.locks.Lock(tableNumber)
	defer unlock()

	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return err
	}

	if _, err := checkout.Transition(session, checkout.ReceiptClosed{}); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, tableNumber); err != nil {
		return errors.Wrap(err, "failed to delete checkout session")
	}

	return nil
}

// step loads the session, applies e and saves the result under the table lock.
func (s *checkoutService) step(ctx context.Context, tableNumber int, e checkout.Event) (*checkout.Session, error) {
	unlock := s.locks.Lock(tableNumber)
	defer unlock()

	session, err := s.load(ctx, tableNumber)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, session, e)
}

// apply must be called with the table lock held.
func (s *checkoutService) apply(ctx context.Context, session checkout.Session, e checkout.Event) (*checkout.Session, error) {
	next, err := checkout.Transition(session, e)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, next); err != nil {
		return nil, errors.Wrap(err, "failed to save checkout session")
	}

	s.loggerFrom(ctx).Debug("Checkout transition",
		slog.Int("table", next.TableNumber),
		slog.String("event", checkout.EventName(e)),
		slog.String("from", string(session.State)),
		slog.String("to", string(next.State)),
	)

	return &next, nil
}

func (s *checkoutService) load(ctx context.Context, tableNumber int) (checkout.Session, error) {
	if err := validateTableNumber(tableNumber); err != nil {
		return checkout.Session{}, err
	}

	session, err := s.sessionRepo.Get(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return checkout.Session{}, domainerrors.ErrCheckoutNotFound
		}

		return checkout.Session{}, errors.Wrap(err, "failed to load checkout session")
	}

	return session, nil
}

func (s *checkoutService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func settlementMessage(err error) string {
	var settlementErr *domainerrors.SettlementError
	if errors.As(err, &settlementErr) {
		return settlementErr.Message()
	}

	return domainerrors.DefaultSettlementMessage
}

func buildReceipt(draft *entity.TransactionDraft) *usecase.Receipt {
	order := draft.ServerOrder
	receipt := &usecase.Receipt{
		OrderID:        order.ID,
		Date:           order.Date,
		TableNumber:    order.TableNumber,
		PaymentMethod:  order.PaymentMethod,
		Lines:          make([]usecase.ReceiptLine, 0, len(order.Items)),
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		DiscountReason: order.DiscountReason,
		PointsRedeemed: draft.PointsRedeemed,
		PointsEarned:   draft.PointsEarned,
		Warning:        draft.Warning,
	}
	if receipt.TableNumber == 0 {
		receipt.TableNumber = draft.TableNumber
	}
	if receipt.PaymentMethod == "" {
		receipt.PaymentMethod = draft.PaymentMethod
	}
	if draft.Customer != nil {
		receipt.CustomerName = draft.Customer.Customer.Name
	}

	names := make(map[string]string, len(draft.Cart.Lines))
	for _, line := range draft.Cart.Lines {
		names[line.ProductID] = line.Name
	}

	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = names[item.ID]
		}
		receipt.Lines = append(receipt.Lines, usecase.ReceiptLine{
			ProductID: item.ID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return receipt
}
