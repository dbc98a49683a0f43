package services

import (
	"context"
	"time"

	"market-adapter/model"
	"market-adapter/utility/logger"

	"market-adapter/database"
)

// HistoricalPriceTimeout bounds a single historical price fetch, the custom
// currency path included.
const HistoricalPriceTimeout = 5 * time.Second

// historicalPriceTolerance is how far a provider timestamp may drift from the
// requested one before the answer is rejected.
const historicalPriceTolerance = int64(24 * 60 * 60)

// HistoricalPriceService answers point-in-time price queries, preferring the
// local store and falling back to the provider.
type HistoricalPriceService struct {
	Gateway    IProviderGateway
	Repository database.IHistoricalPriceRepository
}

// NewHistoricalPriceService ...
func NewHistoricalPriceService(gateway IProviderGateway, repository database.IHistoricalPriceRepository) *HistoricalPriceService {
	return &HistoricalPriceService{
		Gateway:    gateway,
		Repository: repository,
	}
}

// HistoricalPrice returns the price of coinUid in currencyCode at timestamp.
// A stored value wins outright. Provider responses whose timestamp is too far
// from the requested one are rejected with ErrInaccurateTimestamp.
func (service *HistoricalPriceService) HistoricalPrice(ctx context.Context, coinUid string, currencyCode string, timestamp int64) (*model.CoinHistoricalPrice, error) {
	stored, err := service.Repository.HistoricalPrice(coinUid, currencyCode, timestamp)
	if err != nil {
		logger.Warning("Historical price store read for %s/%s failed : %s", coinUid, currencyCode, err)
	}
	if stored != nil {
		return stored, nil
	}

	response, err := service.Gateway.HistoricalCoinPrice(ctx, coinUid, currencyCode, timestamp)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, err
	}

	if response.Timestamp == 0 {
		return nil, ErrNoDataForCoin
	}

	drift := response.Timestamp - timestamp
	if drift < 0 {
		drift = -drift
	}
	if drift > historicalPriceTolerance {
		return nil, ErrInaccurateTimestamp
	}

	price := &model.CoinHistoricalPrice{
		CoinUid:      coinUid,
		CurrencyCode: currencyCode,
		Value:        response.Price,
		Timestamp:    response.Timestamp,
	}
	if saveErr := service.Repository.SaveHistoricalPrice(*price); saveErr != nil {
		logger.Warning("Historical price store write for %s/%s failed : %s", coinUid, currencyCode, saveErr)
	}
	return price, nil
}
