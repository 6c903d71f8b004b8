// Package usecase defines the application's business use cases.
package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// TableUsecase manages open tables and their carts.
type TableUsecase interface {
	// OpenTable opens the table with an empty cart. Opening an open table returns it unchanged.
	OpenTable(ctx context.Context, number int) (*entity.Table, error)

	// ListOpenTables returns the open tables ordered by number.
	ListOpenTables(ctx context.Context) ([]*entity.Table, error)

	// GetTable returns an open table.
	GetTable(ctx context.Context, number int) (*entity.Table, error)

	// AddItem adds one unit of the product to the table's cart.
	AddItem(ctx context.Context, number int, product entity.Product) (*entity.Table, error)

	// RemoveItem removes one unit of the product from the table's cart.
	RemoveItem(ctx context.Context, number int, productID string) (*entity.Table, error)
}
