package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
)

const moneyPlaces = 2

// settlementService implements the SettlementUsecase interface.
type settlementService struct {
	orders    service.OrderGateway
	directory service.CustomerDirectory
	tableRepo repository.TableRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(
	orders service.OrderGateway,
	directory service.CustomerDirectory,
	tableRepo repository.TableRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SettlementUsecase {
	return &settlementService{
		orders:    orders,
		directory: directory,
		tableRepo: tableRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// BuildOrderRequest maps a draft to the settlement payload.
// Subtotal and final total are never sent; the backend prices the order itself.
func BuildOrderRequest(draft *entity.TransactionDraft) *entity.OrderRequest {
	req := &entity.OrderRequest{
		SalespersonID:  draft.SalespersonID,
		TableNumber:    draft.TableNumber,
		PaymentMethod:  draft.PaymentMethod,
		DiscountAmount: draft.DiscountAmount.Round(moneyPlaces),
		Items:          draft.OrderItems(),
	}

	if id := draft.CustomerID(); id != "" {
		req.CustomerID = &id
	}
	if draft.DiscountReason != "" {
		reason := draft.DiscountReason
		req.DiscountReason = &reason
	}

	return req
}

// Settle submits the draft and reconciles the customer's loyalty balance
func (s *settlementService) Settle(ctx context.Context, draft *entity.TransactionDraft) (*usecase.SettlementResult, error) {
	logger := deliverycontext.Logger(ctx, s.logger).With(
		slog.String("draft_id", draft.ID.String()),
		slog.Int("table", draft.TableNumber),
	)

	order, err := s.orders.SubmitOrder(ctx, BuildOrderRequest(draft))
	if err != nil {
		settlementErr := toSettlementError(err)
		logger.Error("Order submission failed", "error", err, "message", settlementErr.Message())

		return nil, settlementErr
	}

	result := &usecase.SettlementResult{Order: order}
	logger = logger.With(slog.String("order_id", order.ID))

	if customer := draft.Customer; customer != nil {
		refreshed, err := s.directory.FindByID(ctx, customer.Customer.ID)
		if err != nil {
			result.Warning = &domainerrors.ReconciliationWarning{CustomerID: customer.Customer.ID, Cause: err}
			logger.Warn("Loyalty balance not reconciled", "error", result.Warning)
		} else {
			result.PointsEarned = max(0, refreshed.LoyaltyPoints-customer.PreviousPoints)
		}
	}

	if err := s.tableRepo.Release(ctx, draft.TableNumber); err != nil {
		logger.Error("Failed to release table after settlement", "error", err)
	}

	s.publish(ctx, logger, draft, result)

	logger.Info("Order settled",
		"total", order.TotalAmount.StringFixed(moneyPlaces),
		"points_earned", result.PointsEarned,
	)

	return result, nil
}

func (s *settlementService) publish(
	ctx context.Context,
	logger *slog.Logger,
	draft *entity.TransactionDraft,
	result *usecase.SettlementResult,
) {
	event := &service.SettlementEvent{
		RequestID:      deliverycontext.RequestID(ctx),
		DraftID:        draft.ID.String(),
		OrderID:        result.Order.ID,
		TableNumber:    draft.TableNumber,
		SalespersonID:  draft.SalespersonID,
		PaymentMethod:  string(draft.PaymentMethod),
		CustomerID:     draft.CustomerID(),
		TotalAmount:    result.Order.TotalAmount,
		DiscountAmount: result.Order.DiscountAmount,
		PointsRedeemed: draft.PointsRedeemed,
		PointsEarned:   result.PointsEarned,
		SettledAt:      time.Now(),
	}

	if err := s.publisher.PublishSettlementEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish settlement event", "error", err)
	}
}

func toSettlementError(err error) *domainerrors.SettlementError {
	var backendErr *service.BackendError
	if errors.As(err, &backendErr) {
		return &domainerrors.SettlementError{
			ServerMessage: backendErr.Message,
			StatusCode:    backendErr.StatusCode,
			Cause:         err,
		}
	}

	return &domainerrors.SettlementError{Cause: err}
}
