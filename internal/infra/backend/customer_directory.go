package backend

import (
	"context"
	"net/http"
	"net/url"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	customersPath     = "/api/customers"
	loyaltyConfigPath = "/api/customers/loyalty-config"
)

type customerDirectory struct {
	client *Client
}

// NewCustomerDirectory creates the customer directory adapter.
func NewCustomerDirectory(client *Client) service.CustomerDirectory {
	return &customerDirectory{client: client}
}

type redeemRequest struct {
	Points int `json:"points"`
}

type redeemResponse struct {
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// ListCustomers returns the whole directory.
func (d *customerDirectory) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := d.client.do(ctx, http.MethodGet, customersPath, nil, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// FindByID returns a customer, or service.ErrCustomerNotFound on 404.
func (d *customerDirectory) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := d.client.do(ctx, http.MethodGet, customerPath(id), nil, &customer); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, service.ErrCustomerNotFound
		}

		return nil, err
	}

	return &customer, nil
}

// Create registers a customer.
func (d *customerDirectory) Create(ctx context.Context, c service.NewCustomer) (*entity.Customer, error) {
	var customer entity.Customer
	if err := d.client.do(ctx, http.MethodPost, customersPath, c, &customer); err != nil {
		return nil, err
	}

	if customer.ID == "" {
		return nil, errors.New("backend returned a customer without id")
	}

	return &customer, nil
}

// Redeem debits points and returns the discount granted by the backend.
func (d *customerDirectory) Redeem(ctx context.Context, customerID string, points int) (decimal.Decimal, error) {
	var resp redeemResponse
	if err := d.client.do(ctx, http.MethodPost, customerPath(customerID)+"/redeem", redeemRequest{Points: points}, &resp); err != nil {
		return decimal.Zero, err
	}

	return resp.DiscountAmount, nil
}

// LoyaltyConfig fetches the loyalty program parameters.
func (d *customerDirectory) LoyaltyConfig(ctx context.Context) (*entity.LoyaltyConfig, error) {
	var cfg entity.LoyaltyConfig
	if err := d.client.do(ctx, http.MethodGet, loyaltyConfigPath, nil, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func customerPath(id string) string {
	return customersPath + "/" + url.PathEscape(id)
}
