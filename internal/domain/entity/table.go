package entity

import "time"

// Table is an open restaurant table and its cart.
type Table struct {
	Number    int       `json:"number"`     // Table number shown to the staff, >= 1.
	Cart      Cart      `json:"cart"`       // Current order for the table.
	OpenedAt  time.Time `json:"opened_at"`  // Timestamp of when the table was opened.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last cart change.
}
