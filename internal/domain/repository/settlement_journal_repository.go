package repository

import (
	"context"
	"time"

	"pos/internal/domain/entity"
)

// SettlementJournalRepository stores settled orders as they are announced.
type SettlementJournalRepository interface {
	// Record appends the record. It returns false when the order is already journaled.
	Record(ctx context.Context, record *entity.SettlementRecord) (bool, error)

	// ListSince returns records settled at or after since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]*entity.SettlementRecord, error)
}
