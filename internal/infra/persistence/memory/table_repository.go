// Package memory contains in-process implementations of the persistence layer.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"
)

// tableRepository implements the repository.TableRepository interface in memory.
type tableRepository struct {
	mu     sync.RWMutex
	tables map[int]*entity.Table
}

// NewTableRepository is the constructor for tableRepository.
func NewTableRepository() repository.TableRepository {
	return &tableRepository{
		tables: make(map[int]*entity.Table),
	}
}

// Open creates the table with an empty cart, or returns the existing one.
func (repo *tableRepository) Open(_ context.Context, number int) (*entity.Table, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if table, ok := repo.tables[number]; ok {
		return copyTable(table), nil
	}

	now := time.Now()
	table := &entity.Table{Number: number, OpenedAt: now, UpdatedAt: now}
	repo.tables[number] = table

	return copyTable(table), nil
}

// Find retrieves an open table by its number.
func (repo *tableRepository) Find(_ context.Context, number int) (*entity.Table, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	table, ok := repo.tables[number]
	if !ok {
		return nil, repository.ErrTableNotFound
	}

	return copyTable(table), nil
}

// List returns all open tables ordered by number.
func (repo *tableRepository) List(_ context.Context) ([]*entity.Table, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	tables := make([]*entity.Table, 0, len(repo.tables))
	for _, table := range repo.tables {
		tables = append(tables, copyTable(table))
	}

	slices.SortFunc(tables, func(a, b *entity.Table) int {
		return a.Number - b.Number
	})

	return tables, nil
}

// SaveCart replaces the cart of an open table.
func (repo *tableRepository) SaveCart(_ context.Context, number int, cart entity.Cart) (*entity.Table, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	table, ok := repo.tables[number]
	if !ok {
		return nil, repository.ErrTableNotFound
	}

	table.Cart = cart.Clone()
	table.UpdatedAt = time.Now()

	return copyTable(table), nil
}

// Release removes the table from the open set.
func (repo *tableRepository) Release(_ context.Context, number int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.tables, number)

	return nil
}

func copyTable(table *entity.Table) *entity.Table {
	cp := *table
	cp.Cart = table.Cart.Clone()

	return &cp
}
