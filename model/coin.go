package model

// Coin ... Catalog entry for a crypto asset known to the market data provider
type Coin struct {
	Uid           string  `gorm:"primary_key" json:"uid"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	MarketCapRank *int    `json:"market_cap_rank,omitempty"`
	CoinGeckoId   *string `json:"coingecko_id,omitempty"`
}

// TableName ...
func (Coin) TableName() string {
	return "coins"
}
