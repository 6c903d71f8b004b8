package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableModel is the GORM-specific struct for the 'open_tables' table.
// A row exists while the table is open.
type TableModel struct {
	Number    int             `gorm:"primaryKey;autoIncrement:false"`
	Lines     []CartLineModel `gorm:"foreignKey:TableNumber;references:Number;constraint:OnDelete:CASCADE"`
	OpenedAt  time.Time       `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TableModel) TableName() string {
	return "open_tables"
}

// CartLineModel is the GORM-specific struct for the 'cart_lines' table.
type CartLineModel struct {
	ID          uint            `gorm:"primaryKey"`
	TableNumber int             `gorm:"not null;index;uniqueIndex:idx_cart_lines_table_product"`
	Position    int             `gorm:"not null"`
	ProductID   string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_lines_table_product"`
	Name        string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
