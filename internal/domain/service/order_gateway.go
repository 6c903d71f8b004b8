package service

import (
	"context"
	"fmt"

	"pos/internal/domain/entity"
)

// BackendError is a non-2xx answer from the order service.
// Message is the operator-facing text from the `{"message": ...}` body, when present.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// OrderGateway submits orders to the backend, which recomputes and certifies pricing.
type OrderGateway interface {
	// SubmitOrder posts the order and returns the certified record.
	SubmitOrder(ctx context.Context, req *entity.OrderRequest) (*entity.CertifiedOrder, error)
}
