package services

import (
	"market-adapter/dto"
	"market-adapter/model"
	"market-adapter/utility/constants"
	"market-adapter/utility/logger"
)

// WithCustomCurrency routes one currency-keyed operation through the custom
// currency overlay. When the requested code has a custom currency record the
// operation runs against the baseline currency and every monetary field of
// the result is repriced; otherwise the operation runs unchanged. A failed
// record lookup falls open to the native path.
func WithCustomCurrency[T any](service *CustomCurrencyService, currencyCode string,
	fetch func(currencyCode string) (T, error),
	convert func(custom model.CustomCurrency, result T) T) (T, error) {

	custom, err := service.CustomCurrency(currencyCode)
	if err != nil {
		logger.Warning("Custom currency lookup for %s failed, using native path : %s", currencyCode, err)
		custom = nil
	}
	if custom == nil {
		return fetch(currencyCode)
	}

	result, err := fetch(constants.BASELINE_CURRENCY)
	if err != nil {
		var empty T
		return empty, err
	}
	return convert(*custom, result), nil
}

// ConvertCoinPrice reprices one record and retags its currency. The 24h diff
// is a percentage and stays as is.
func ConvertCoinPrice(custom model.CustomCurrency, price model.CoinPrice) model.CoinPrice {
	price.CurrencyCode = custom.CurrencyCode
	price.Value = price.Value.Mul(custom.UnitsPerDollar)
	return price
}

// ConvertCoinPriceRef ... pointer form for cache lookups that may miss
func ConvertCoinPriceRef(custom model.CustomCurrency, price *model.CoinPrice) *model.CoinPrice {
	if price == nil {
		return nil
	}
	converted := ConvertCoinPrice(custom, *price)
	return &converted
}

// ConvertCoinPriceMap ...
func ConvertCoinPriceMap(custom model.CustomCurrency, prices map[string]model.CoinPrice) map[string]model.CoinPrice {
	converted := make(map[string]model.CoinPrice, len(prices))
	for coinUid, price := range prices {
		converted[coinUid] = ConvertCoinPrice(custom, price)
	}
	return converted
}

// ConvertHistoricalPrice ...
func ConvertHistoricalPrice(custom model.CustomCurrency, price *model.CoinHistoricalPrice) *model.CoinHistoricalPrice {
	if price == nil {
		return nil
	}
	converted := *price
	converted.CurrencyCode = custom.CurrencyCode
	converted.Value = converted.Value.Mul(custom.UnitsPerDollar)
	return &converted
}

// ConvertChartPoints reprices both the price and volume fields of a series.
func ConvertChartPoints(custom model.CustomCurrency, points []dto.ChartPointResponse) []dto.ChartPointResponse {
	converted := make([]dto.ChartPointResponse, 0, len(points))
	for _, point := range points {
		point.Price = point.Price.Mul(custom.UnitsPerDollar)
		if point.TotalVolume != nil {
			volume := point.TotalVolume.Mul(custom.UnitsPerDollar)
			point.TotalVolume = &volume
		}
		converted = append(converted, point)
	}
	return converted
}

// ConvertCoinPriceStream wraps a live stream so every emitted value is
// repriced, not just the first.
func ConvertCoinPriceStream(custom model.CustomCurrency, stream *CoinPriceStream) *CoinPriceStream {
	converted := &CoinPriceStream{
		updates: make(chan model.CoinPrice, subscriberBufferSize),
		close:   stream.close,
	}
	go func() {
		defer close(converted.updates)
		for price := range stream.updates {
			select {
			case converted.updates <- ConvertCoinPrice(custom, price):
			default:
			}
		}
	}()
	return converted
}

// ConvertPriceMapStream ...
func ConvertPriceMapStream(custom model.CustomCurrency, stream *PriceMapStream) *PriceMapStream {
	converted := &PriceMapStream{
		updates: make(chan map[string]model.CoinPrice, subscriberBufferSize),
		close:   stream.close,
	}
	go func() {
		defer close(converted.updates)
		for prices := range stream.updates {
			select {
			case converted.updates <- ConvertCoinPriceMap(custom, prices):
			default:
			}
		}
	}()
	return converted
}
