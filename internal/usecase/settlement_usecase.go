package usecase

import (
	"context"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
)

// SettlementResult is what the backend certified for a draft.
type SettlementResult struct {
	Order        *entity.CertifiedOrder
	PointsEarned int
	Warning      *domainerrors.ReconciliationWarning
}

// SettlementUsecase reconciles a frozen draft with the order service.
type SettlementUsecase interface {
	// Settle submits the draft and returns the certified order.
	// A failed submission returns a *errors.SettlementError and leaves the table untouched.
	Settle(ctx context.Context, draft *entity.TransactionDraft) (*SettlementResult, error)
}
