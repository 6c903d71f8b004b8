package service

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrCustomerNotFound is returned by the directory when the id is unknown.
var ErrCustomerNotFound = errors.New("customer not found")

// NewCustomer is the payload for registering a customer.
type NewCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// CustomerDirectory is the externally owned customer and loyalty registry.
type CustomerDirectory interface {
	// ListCustomers returns the whole directory.
	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	// FindByID returns a customer, or ErrCustomerNotFound.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)

	// Create registers a customer; the directory assigns the id and a zero balance.
	Create(ctx context.Context, c NewCustomer) (*entity.Customer, error)

	// Redeem debits points from the customer's balance and returns the granted discount.
	Redeem(ctx context.Context, customerID string, points int) (decimal.Decimal, error)

	// LoyaltyConfig fetches the loyalty program parameters.
	LoyaltyConfig(ctx context.Context) (*entity.LoyaltyConfig, error)
}
