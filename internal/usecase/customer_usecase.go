package usecase

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateCustomerInput holds the fields needed to register a customer.
type CreateCustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// CustomerUsecase adapts the customer directory for the checkout flow.
type CustomerUsecase interface {
	// Search matches the query against name and phone, ignoring case, ordered by name.
	// An empty query returns the whole directory.
	Search(ctx context.Context, query string) ([]entity.Customer, error)

	// Get returns a single customer.
	Get(ctx context.Context, id string) (*entity.Customer, error)

	// Create registers a customer with a zero loyalty balance.
	Create(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// LoyaltyConfig fetches the loyalty parameters, falling back to the configured defaults.
	LoyaltyConfig(ctx context.Context) entity.LoyaltyConfig

	// Redeem debits points from the customer's balance and returns the granted discount.
	Redeem(ctx context.Context, customer *entity.CustomerSnapshot, points int, cfg entity.LoyaltyConfig) (decimal.Decimal, error)
}
