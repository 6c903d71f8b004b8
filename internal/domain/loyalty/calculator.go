// Package loyalty computes the advisory discount breakdown shown on the customer step.
// Calculate is pure; the backend certifies the final amounts at settlement.
package loyalty

import (
	"fmt"
	"strings"

	"pos/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ReasonSeparator joins the discount reason fragments.
const ReasonSeparator = " + "

const displayPlaces = 2

// Operator input outside these bounds is treated as unparsable.
const (
	maxDiscountExponent = 9
	minDiscountExponent = -6
	maxDiscountDigits   = 18
)

var hundred = decimal.NewFromInt(100)

// Input gathers everything the calculator depends on.
type Input struct {
	Subtotal decimal.Decimal
	Customer *entity.Customer
	Config   entity.LoyaltyConfig
	Discount entity.DiscountState
}

// Quote is the discount breakdown. Amounts keep full precision; use Rounded for display.
type Quote struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	PointsToRedeem  int             `json:"points_to_redeem"`
	MaxRedeemable   int             `json:"max_redeemable"`
	LoyaltyDiscount decimal.Decimal `json:"loyalty_discount"`
	ManualDiscount  decimal.Decimal `json:"manual_discount"`
	TotalDiscount   decimal.Decimal `json:"total_discount"`
	FinalTotal      decimal.Decimal `json:"final_total"`

	// AutoDiscountApplies is a hint that the backend will apply its own discount at settlement.
	AutoDiscountApplies  bool            `json:"auto_discount_applies"`
	AutoDiscountRate     decimal.Decimal `json:"auto_discount_rate"`
	AutoDiscountEstimate decimal.Decimal `json:"auto_discount_estimate"`

	DiscountReason string `json:"discount_reason"`
}

// Calculate computes the quote for the given input.
func Calculate(in Input) Quote {
	cfg := in.Config.Normalized()
	subtotal := in.Subtotal
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	q := Quote{
		Subtotal:             subtotal,
		AutoDiscountRate:     cfg.AutoDiscountRate,
		LoyaltyDiscount:      decimal.Zero,
		AutoDiscountEstimate: decimal.Zero,
	}

	if in.Customer != nil {
		q.MaxRedeemable = MaxRedeemable(in.Customer.LoyaltyPoints, cfg.RedemptionStep)
		q.PointsToRedeem = ClampPoints(in.Discount.PointsToRedeem, in.Customer.LoyaltyPoints, cfg.RedemptionStep)
		blocks := decimal.NewFromInt(int64(q.PointsToRedeem / cfg.RedemptionStep))
		q.LoyaltyDiscount = blocks.Mul(cfg.DiscountPerRedemption)
	}

	value := ParseDiscountValue(in.Discount.Value)
	if in.Discount.Type != entity.DiscountTypeFixed {
		value = decimal.Min(value, hundred)
	}
	q.ManualDiscount = ManualDiscount(subtotal, in.Discount.Type, value)

	q.TotalDiscount = decimal.Min(q.LoyaltyDiscount.Add(q.ManualDiscount), subtotal)
	q.FinalTotal = decimal.Max(subtotal.Sub(q.TotalDiscount), decimal.Zero)

	if subtotal.GreaterThan(cfg.AutoDiscountThreshold) && q.TotalDiscount.IsZero() {
		q.AutoDiscountApplies = true
		q.AutoDiscountEstimate = subtotal.Mul(cfg.AutoDiscountRate).Div(hundred)
	}

	q.DiscountReason = buildReason(q, in.Discount.Type, value)

	return q
}

// Rounded returns a copy with every amount rounded to cents.
func (q Quote) Rounded() Quote {
	q.Subtotal = q.Subtotal.Round(displayPlaces)
	q.LoyaltyDiscount = q.LoyaltyDiscount.Round(displayPlaces)
	q.ManualDiscount = q.ManualDiscount.Round(displayPlaces)
	q.TotalDiscount = q.TotalDiscount.Round(displayPlaces)
	q.FinalTotal = q.FinalTotal.Round(displayPlaces)
	q.AutoDiscountEstimate = q.AutoDiscountEstimate.Round(displayPlaces)

	return q
}

// MaxRedeemable returns floor(points/step)*step.
func MaxRedeemable(points, step int) int {
	if points <= 0 || step <= 0 {
		return 0
	}

	return (points / step) * step
}

// ClampPoints rounds requested down to a multiple of step and caps it at MaxRedeemable.
func ClampPoints(requested, balance, step int) int {
	if requested <= 0 || step <= 0 {
		return 0
	}

	clamped := (requested / step) * step

	return min(clamped, MaxRedeemable(balance, step))
}

// ParseDiscountValue parses operator input. Blank, unparsable or negative input yields zero.
func ParseDiscountValue(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return decimal.Zero
	}

	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	if v.Exponent() > maxDiscountExponent || v.Exponent() < minDiscountExponent || v.NumDigits() > maxDiscountDigits {
		return decimal.Zero
	}

	return v
}

// ManualDiscount applies a percentage or fixed discount, never exceeding the subtotal.
func ManualDiscount(subtotal decimal.Decimal, kind entity.DiscountType, value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() || value.IsZero() {
		return decimal.Zero
	}

	switch kind {
	case entity.DiscountTypeFixed:
		return decimal.Min(value, subtotal)
	default:
		return decimal.Min(subtotal.Mul(value).Div(hundred), subtotal)
	}
}

func buildReason(q Quote, kind entity.DiscountType, value decimal.Decimal) string {
	parts := make([]string, 0, 2)

	if q.LoyaltyDiscount.IsPositive() {
		parts = append(parts, fmt.Sprintf("Loyalty: %d pts (-%s€)", q.PointsToRedeem, q.LoyaltyDiscount.StringFixed(displayPlaces)))
	}

	if q.ManualDiscount.IsPositive() {
		if kind == entity.DiscountTypeFixed {
			parts = append(parts, fmt.Sprintf("Fixed discount (-%s€)", q.ManualDiscount.StringFixed(displayPlaces)))
		} else {
			parts = append(parts, fmt.Sprintf("Discount %s%% (-%s€)", value.String(), q.ManualDiscount.StringFixed(displayPlaces)))
		}
	}

	return strings.Join(parts, ReasonSeparator)
}
