package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
)

// settlementJournalRepository implements the repository.SettlementJournalRepository interface in memory.
type settlementJournalRepository struct {
	mu      sync.RWMutex
	records map[string]entity.SettlementRecord
}

// NewSettlementJournalRepository is the constructor for settlementJournalRepository.
func NewSettlementJournalRepository() repository.SettlementJournalRepository {
	return &settlementJournalRepository{
		records: make(map[string]entity.SettlementRecord),
	}
}

// Record appends the record unless the order is already journaled.
func (repo *settlementJournalRepository) Record(_ context.Context, record *entity.SettlementRecord) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.records[record.OrderID]; ok {
		return false, nil
	}

	repo.records[record.OrderID] = *record

	return true, nil
}

// ListSince returns records settled at or after since, oldest first.
func (repo *settlementJournalRepository) ListSince(_ context.Context, since time.Time) ([]*entity.SettlementRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	records := make([]*entity.SettlementRecord, 0, len(repo.records))
	for _, record := range repo.records {
		if record.SettledAt.Before(since) {
			continue
		}

		cp := record
		records = append(records, &cp)
	}

	slices.SortFunc(records, func(a, b *entity.SettlementRecord) int {
		if c := a.SettledAt.Compare(b.SettledAt); c != 0 {
			return c
		}

		return strings.Compare(a.OrderID, b.OrderID)
	})

	return records, nil
}
