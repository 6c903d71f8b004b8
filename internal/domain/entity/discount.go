package entity

// DiscountType selects how a manual discount value is interpreted.
type DiscountType string

const (
	DiscountTypePercent DiscountType = "PERCENT"
	DiscountTypeFixed   DiscountType = "FIXED"
)

// DiscountState is the operator's discount input on the customer step.
// Value is kept as typed by the operator; unparsable input counts as zero.
type DiscountState struct {
	PointsToRedeem int          `json:"points_to_redeem"`
	Type           DiscountType `json:"discount_type"`
	Value          string       `json:"discount_value"`
}
