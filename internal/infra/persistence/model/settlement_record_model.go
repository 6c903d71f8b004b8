package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRecordModel is the GORM-specific struct for the 'settlement_journal' table.
type SettlementRecordModel struct {
	OrderID        string          `gorm:"type:varchar(64);primaryKey"`
	DraftID        string          `gorm:"type:varchar(64);not null"`
	TableNumber    int             `gorm:"not null"`
	SalespersonID  string          `gorm:"type:varchar(255);not null"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null"`
	CustomerID     *string         `gorm:"type:varchar(64);index"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PointsRedeemed int             `gorm:"not null;default:0"`
	PointsEarned   int             `gorm:"not null;default:0"`
	SettledAt      time.Time       `gorm:"not null;index"`
	RecordedAt     time.Time       `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (SettlementRecordModel) TableName() string {
	return "settlement_journal"
}
