package services

import (
	"time"

	"market-adapter/model"
	"market-adapter/utility/cache"
	"market-adapter/utility/constants"
)

// PriceCacheService ... Holds the last known price per (coin, currency).
// Reads never touch the database; writes are last-write-wins. A straggler
// fetch can overwrite a newer value with older data, the next tick repairs it.
type PriceCacheService struct {
	memory   *cache.Memory
	listener CoinPriceListener
}

// NewPriceCacheService ...
func NewPriceCacheService() *PriceCacheService {
	return &PriceCacheService{
		// price entries never expire, they are superseded only
		memory: cache.Initialize(cache.NoExpiry, time.Hour),
	}
}

// SetListener ... wired at construction time by the owner of both sides
func (service *PriceCacheService) SetListener(listener CoinPriceListener) {
	service.listener = listener
}

// Get ...
func (service *PriceCacheService) Get(coinUid, currencyCode string) *model.CoinPrice {
	cached := service.memory.Get(priceKey(coinUid, currencyCode))
	if cached == nil {
		return nil
	}
	price, ok := cached.(model.CoinPrice)
	if !ok {
		return nil
	}
	return &price
}

// GetMany ... coins without a cached price are absent from the result
func (service *PriceCacheService) GetMany(coinUids []string, currencyCode string) map[string]model.CoinPrice {
	prices := map[string]model.CoinPrice{}
	for _, coinUid := range coinUids {
		if price := service.Get(coinUid, currencyCode); price != nil {
			prices[coinUid] = *price
		}
	}
	return prices
}

// Update ... overwrites entries and notifies the listener once per batch so
// it can rebroadcast efficiently
func (service *PriceCacheService) Update(currencyCode string, prices []model.CoinPrice) {
	for _, price := range prices {
		service.memory.Set(priceKey(price.CoinUid, price.CurrencyCode), price, false)
	}
	if service.listener != nil && len(prices) > 0 {
		service.listener.DidUpdate(currencyCode, prices)
	}
}

func priceKey(coinUid, currencyCode string) string {
	return coinUid + constants.COIN_PRICE_SEPERATOR + currencyCode
}
