package services

import (
	"context"
	"errors"

	"market-adapter/dto"
	"market-adapter/model"
)

// Errors surfaced to callers of one-shot operations. Transient tick failures
// are logged and retried on the next tick instead.
var (
	ErrTimeout             = errors.New("market data request timed out")
	ErrInaccurateTimestamp = errors.New("returned historical timestamp is very inaccurate")
	ErrNoDataForCoin       = errors.New("provider returned no data for coin")
)

// IProviderGateway ... consumed market data provider surface. Each call may
// fail with a transport or rate limit error.
type IProviderGateway interface {
	AllCoins() ([]dto.CoinResponse, error)
	AllBlockchains() ([]dto.BlockchainResponse, error)
	AllTokens() ([]dto.TokenResponse, error)
	CoinPrices(coinUids []string, currencyCode string) ([]model.CoinPrice, error)
	HistoricalCoinPrice(ctx context.Context, coinUid, currencyCode string, timestamp int64) (dto.HistoricalPriceResponse, error)
	ChartPoints(ctx context.Context, coinUid, currencyCode string, interval string, fromTimestamp int64) ([]dto.ChartPointResponse, error)
	CustomCurrencies() ([]dto.CustomCurrencyResponse, error)
}

// CoinPriceListener ... consumes price cache updates, once per batch
type CoinPriceListener interface {
	DidUpdate(currencyCode string, prices []model.CoinPrice)
}

// CatalogListener ... notified after every successful catalog replace
type CatalogListener interface {
	CatalogUpdated()
}
