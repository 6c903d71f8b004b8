package usecase

import (
	"context"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"
)

// JournalUsecase keeps the settlement journal fed by published settlement events.
type JournalUsecase interface {
	// RecordSettlement journals the event. Replays of an already journaled order are accepted and ignored.
	// Malformed events return a validation error and must not be retried.
	RecordSettlement(ctx context.Context, event *service.SettlementEvent) error

	// ListSettlements returns the journal entries settled at or after since.
	ListSettlements(ctx context.Context, since time.Time) ([]*entity.SettlementRecord, error)
}
