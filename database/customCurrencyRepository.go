package database

import (
	"market-adapter/model"
	"market-adapter/utility/logger"
)

// ICustomCurrencyRepository ... Interface definition for the custom currency store
type ICustomCurrencyRepository interface {
	CustomCurrencyByCode(currencyCode string) (*model.CustomCurrency, error)
	SaveCustomCurrencies(currencies []model.CustomCurrency) error
}

// CustomCurrencyRepository ... Repository definition for custom currency records
type CustomCurrencyRepository struct {
	BaseRepository
}

// CustomCurrencyByCode ... returns nil without error when the code has no
// custom currency record, i.e. the code is a native currency
func (repo *CustomCurrencyRepository) CustomCurrencyByCode(currencyCode string) (*model.CustomCurrency, error) {
	currency := model.CustomCurrency{}
	if err := repo.DB.Where(&model.CustomCurrency{CurrencyCode: currencyCode}).First(&currency).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, repoError(err)
	}
	return &currency, nil
}

// SaveCustomCurrencies ... upserts the refreshed records; existing codes are overwritten
func (repo *CustomCurrencyRepository) SaveCustomCurrencies(currencies []model.CustomCurrency) error {
	for _, currency := range currencies {
		record := model.CustomCurrency{CurrencyCode: currency.CurrencyCode}
		if err := repo.DB.Where(&model.CustomCurrency{CurrencyCode: currency.CurrencyCode}).Assign(currency).FirstOrCreate(&record).Error; err != nil {
			logger.Error("Error with repository SaveCustomCurrencies for %s : %s", currency.CurrencyCode, err)
			return repoError(err)
		}
	}
	return nil
}
