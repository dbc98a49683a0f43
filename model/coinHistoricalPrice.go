package model

import (
	"github.com/shopspring/decimal"
)

// CoinHistoricalPrice ... Locally stored historical price point
type CoinHistoricalPrice struct {
	CoinUid      string          `gorm:"primary_key" json:"coin_uid"`
	CurrencyCode string          `gorm:"primary_key" json:"currency_code"`
	Timestamp    int64           `gorm:"primary_key" json:"timestamp"`
	Value        decimal.Decimal `gorm:"type:decimal(40,20)" json:"value"`
}

// TableName ...
func (CoinHistoricalPrice) TableName() string {
	return "coin_historical_prices"
}
