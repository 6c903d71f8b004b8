// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a menu item handed to a table's cart.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CartLine is one product in a cart with its merged quantity.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"` // Always >= 1; a line at zero is removed.
}

// LineTotal returns unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the mutable line-item collection of a table.
// A product appears at most once; adding it again increments the quantity.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the quantity of the product or appends it with quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	})
}

// Remove decrements the quantity of the product, deleting the line when it reaches zero.
// Removing a product that is not in the cart is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--

			return
		}

		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

		return
	}
}

// Total sums unit price times quantity over all lines. It is recomputed on every call.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal())
	}

	return total
}

// ItemCount returns the number of units in the cart.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}

	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)

	return Cart{Lines: lines}
}
