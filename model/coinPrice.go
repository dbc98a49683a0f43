package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seconds after which a cached price is considered stale for display purposes.
const coinPriceExpirationInterval = 240

// CoinPrice ... Last known price of a coin in one currency. Newer writes
// overwrite older ones unconditionally; the provider is authoritative per fetch.
type CoinPrice struct {
	CoinUid      string           `gorm:"primary_key" json:"coin_uid"`
	CurrencyCode string           `gorm:"primary_key" json:"currency_code"`
	Value        decimal.Decimal  `gorm:"type:decimal(40,20)" json:"value"`
	Diff24h      *decimal.Decimal `gorm:"type:decimal(40,20)" json:"diff_24h,omitempty"`
	Timestamp    int64            `json:"timestamp"`
}

// TableName ...
func (CoinPrice) TableName() string {
	return "coin_prices"
}

// Expired reports whether the price is older than the staleness window.
func (price CoinPrice) Expired() bool {
	return time.Now().Unix()-price.Timestamp > coinPriceExpirationInterval
}
