package entity

import "github.com/shopspring/decimal"

// LoyaltyConfig parameterizes all discount math of a checkout.
type LoyaltyConfig struct {
	PointsPerEuro         int             `json:"pointsPerEuro"`
	RedemptionStep        int             `json:"redemptionStep"`        // Smallest redeemable block of points.
	DiscountPerRedemption decimal.Decimal `json:"discountPerRedemption"` // Money off per redeemed block.
	AutoDiscountRate      decimal.Decimal `json:"autoDiscountRate"`      // Percentage applied by the backend.
	AutoDiscountThreshold decimal.Decimal `json:"autoDiscountThreshold"` // Subtotal above which the backend applies it.
}

// DefaultLoyaltyConfig is the conservative set used when the backend configuration is unavailable.
func DefaultLoyaltyConfig() LoyaltyConfig {
	return LoyaltyConfig{
		PointsPerEuro:         1,
		RedemptionStep:        100,
		DiscountPerRedemption: decimal.NewFromInt(5),
		AutoDiscountRate:      decimal.NewFromInt(5),
		AutoDiscountThreshold: decimal.NewFromInt(20),
	}
}

// Normalized replaces values that would break the discount math with the defaults.
func (c LoyaltyConfig) Normalized() LoyaltyConfig {
	def := DefaultLoyaltyConfig()
	if c.RedemptionStep <= 0 {
		c.RedemptionStep = def.RedemptionStep
	}
	if c.DiscountPerRedemption.IsNegative() {
		c.DiscountPerRedemption = decimal.Zero
	}
	if c.AutoDiscountRate.IsNegative() {
		c.AutoDiscountRate = decimal.Zero
	}

	return c
}
