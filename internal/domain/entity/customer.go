package entity

// Customer is a loyalty-program member owned by the customer directory.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// CustomerSnapshot is the read-only view of a customer held by a checkout.
// PreviousPoints is captured when the customer is selected, before any redemption.
type CustomerSnapshot struct {
	Customer       Customer `json:"customer"`
	PreviousPoints int      `json:"previous_points"`
}

// NewCustomerSnapshot captures the customer's current balance as PreviousPoints.
func NewCustomerSnapshot(c Customer) *CustomerSnapshot {
	return &CustomerSnapshot{
		Customer:       c,
		PreviousPoints: c.LoyaltyPoints,
	}
}
