package model

import (
	"github.com/shopspring/decimal"
)

// CustomCurrency ... A non-native currency served by repricing baseline (USD)
// results with a fixed multiplier. Absence of a record for a code means the
// code is native and no conversion applies.
type CustomCurrency struct {
	CurrencyCode   string          `gorm:"primary_key" json:"currency_code"`
	TelephoneCode  string          `json:"telephone_code,omitempty"`
	UnitsPerDollar decimal.Decimal `gorm:"type:decimal(40,20)" json:"units_per_dollar"`
	Symbol         string          `json:"symbol,omitempty"`
	Icon           *string         `json:"icon,omitempty"`
}

// TableName ...
func (CustomCurrency) TableName() string {
	return "custom_currencies"
}
