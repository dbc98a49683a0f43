package services

import (
	"market-adapter/database"
	"market-adapter/model"
	"market-adapter/utility/cache"
	"market-adapter/utility/constants"
	"market-adapter/utility/logger"
)

// CustomCurrencyService ... Read-through cached access to custom currency
// records, refreshed periodically from the provider.
type CustomCurrencyService struct {
	Cache      *cache.Memory
	gateway    IProviderGateway
	repository database.ICustomCurrencyRepository
}

// NewCustomCurrencyService ...
func NewCustomCurrencyService(memory *cache.Memory, gateway IProviderGateway, repository database.ICustomCurrencyRepository) *CustomCurrencyService {
	return &CustomCurrencyService{
		Cache:      memory,
		gateway:    gateway,
		repository: repository,
	}
}

// CustomCurrency ... nil without error means the code is native and no
// overlay applies
func (service *CustomCurrencyService) CustomCurrency(currencyCode string) (*model.CustomCurrency, error) {
	cacheKey := constants.CUSTOM_CURRENCY_CACHE_PREFIX + currencyCode
	if cached := service.Cache.Get(cacheKey); cached != nil {
		if currency, ok := cached.(model.CustomCurrency); ok {
			return &currency, nil
		}
	}

	currency, err := service.repository.CustomCurrencyByCode(currencyCode)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, nil
	}
	service.Cache.Set(cacheKey, *currency, true)
	return currency, nil
}

// RefreshCustomCurrencies ... pulls the current records from the provider and
// upserts them. On failure the stored rows keep serving.
func (service *CustomCurrencyService) RefreshCustomCurrencies() error {
	responses, err := service.gateway.CustomCurrencies()
	if err != nil {
		return err
	}

	currencies := make([]model.CustomCurrency, 0, len(responses))
	for _, response := range responses {
		currencies = append(currencies, response.CustomCurrency())
	}
	if err := service.repository.SaveCustomCurrencies(currencies); err != nil {
		return err
	}
	for _, currency := range currencies {
		service.Cache.Delete(constants.CUSTOM_CURRENCY_CACHE_PREFIX + currency.CurrencyCode)
	}
	logger.Info("Custom currencies refreshed : %d records", len(currencies))
	return nil
}
