package denoms

import (
	"market-adapter/model"

	"github.com/shopspring/decimal"
)

// Locally defined assets that the upstream catalog does not carry. They are
// appended to every successful catalog sync and their prices are pinned at
// one baseline unit so lookups always resolve.

var sentinelRank = -1

var InjectedCoins = []model.Coin{
	{
		Uid:           "inoi",
		Name:          "INOI Token",
		Code:          "INOI",
		MarketCapRank: &sentinelRank,
	},
	{
		Uid:           "inoiTest",
		Name:          "INOI Token",
		Code:          "INOI",
		MarketCapRank: &sentinelRank,
	},
}

var InjectedTokens = []model.Token{
	{
		CoinUid:       "inoi",
		BlockchainUid: "binance-smart-chain",
		Type:          "eip20",
		Decimals:      18,
		Reference:     "0x22FcC36558F0e02aF135045EDB0a43f64511DA59",
	},
	{
		CoinUid:       "inoiTest",
		BlockchainUid: "binance-smart-chain",
		Type:          "eip20",
		Decimals:      18,
		Reference:     "0x0312b9934b10b0c8d05a641fe5381d4303e4e2ee",
	},
}

// InjectedCoinPrices ... fixed price entries appended to every price batch
func InjectedCoinPrices(currencyCode string) []model.CoinPrice {
	prices := make([]model.CoinPrice, 0, len(InjectedCoins))
	for _, coin := range InjectedCoins {
		prices = append(prices, model.CoinPrice{
			CoinUid:      coin.Uid,
			CurrencyCode: currencyCode,
			Value:        decimal.NewFromInt(1),
			Timestamp:    0,
		})
	}
	return prices
}
