package dto

import (
	"market-adapter/model"

	"github.com/shopspring/decimal"
)

// CoinPriceResponse ... Provider payload for one coin price
type CoinPriceResponse struct {
	Uid            string           `json:"uid" validate:"required"`
	Price          decimal.Decimal  `json:"price"`
	PriceChange24h *decimal.Decimal `json:"price_change_24h"`
	LastUpdated    int64            `json:"last_updated"`
}

// CoinPrice ... tags the provider payload with the currency it was fetched in
func (response CoinPriceResponse) CoinPrice(currencyCode string) model.CoinPrice {
	return model.CoinPrice{
		CoinUid:      response.Uid,
		CurrencyCode: currencyCode,
		Value:        response.Price,
		Diff24h:      response.PriceChange24h,
		Timestamp:    response.LastUpdated,
	}
}

// HistoricalPriceResponse ... Provider payload for a historical price lookup
type HistoricalPriceResponse struct {
	Timestamp int64           `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
}

// ChartPointResponse ... Provider payload for one chart series point
type ChartPointResponse struct {
	Timestamp   int64            `json:"timestamp"`
	Price       decimal.Decimal  `json:"price"`
	TotalVolume *decimal.Decimal `json:"total_volume"`
}

// CustomCurrencyResponse ... Provider payload for one custom currency record
type CustomCurrencyResponse struct {
	CurrencyCode   string          `json:"currency_code" validate:"required"`
	TelephoneCode  string          `json:"telephone_code"`
	UnitsPerDollar decimal.Decimal `json:"units_per_dollar" validate:"required"`
	Symbol         string          `json:"symbol"`
	Icon           *string         `json:"icon"`
}

// CustomCurrency ...
func (response CustomCurrencyResponse) CustomCurrency() model.CustomCurrency {
	return model.CustomCurrency{
		CurrencyCode:   response.CurrencyCode,
		TelephoneCode:  response.TelephoneCode,
		UnitsPerDollar: response.UnitsPerDollar,
		Symbol:         response.Symbol,
		Icon:           response.Icon,
	}
}
