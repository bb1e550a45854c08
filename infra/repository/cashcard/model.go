package cashcard

import "github.com/shopspring/decimal"

// CashCard represents a cash card record in the database. The amount column
// is NUMERIC so stored values round-trip without float rounding.
type CashCard struct {
	ID     int64           `gorm:"primaryKey;autoIncrement:false"`
	Amount decimal.Decimal `gorm:"type:numeric;not null;default:0"`
}

// TableName specifies the table name for the CashCard model.
func (CashCard) TableName() string {
	return "cash_card"
}
