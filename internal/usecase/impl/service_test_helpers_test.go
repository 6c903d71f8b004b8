package impl

import (
	"io"
	"log/slog"

	"pos/config"
	"pos/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(locale string) *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{Locale: locale},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testTable(number int, products ...entity.Product) *entity.Table {
	table := &entity.Table{Number: number}
	for _, p := range products {
		table.Cart.Add(p)
	}

	return table
}

var (
	burger = entity.Product{ID: "p-burger", Name: "Burger", UnitPrice: price("12.50")}
	soda   = entity.Product{ID: "p-soda", Name: "Soda", UnitPrice: price("3.00")}
)
