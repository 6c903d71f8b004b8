// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for table persistence.
var (
	// ErrTableNotFound is returned when a table is not open.
	ErrTableNotFound = errors.New("table not found")
)

// TableRepository stores the set of open tables and their carts.
type TableRepository interface {
	// Open creates the table with an empty cart, or returns the existing one.
	Open(ctx context.Context, number int) (*entity.Table, error)

	// Find retrieves an open table by its number.
	Find(ctx context.Context, number int) (*entity.Table, error)

	// List returns all open tables ordered by number.
	List(ctx context.Context) ([]*entity.Table, error)

	// SaveCart replaces the cart of an open table.
	SaveCart(ctx context.Context, number int, cart entity.Cart) (*entity.Table, error)

	// Release removes the table from the open set. Releasing an unknown table is a no-op.
	Release(ctx context.Context, number int) error
}
