package database

import (
	"market-adapter/model"
	"market-adapter/utility/logger"
)

// IHistoricalPriceRepository ... Interface definition for stored historical prices
type IHistoricalPriceRepository interface {
	HistoricalPrice(coinUid, currencyCode string, timestamp int64) (*model.CoinHistoricalPrice, error)
	SaveHistoricalPrice(price model.CoinHistoricalPrice) error
}

// HistoricalPriceRepository ... Repository definition for historical price points
type HistoricalPriceRepository struct {
	BaseRepository
}

// HistoricalPrice ... returns nil without error on a local miss
func (repo *HistoricalPriceRepository) HistoricalPrice(coinUid, currencyCode string, timestamp int64) (*model.CoinHistoricalPrice, error) {
	price := model.CoinHistoricalPrice{}
	err := repo.DB.Where(&model.CoinHistoricalPrice{CoinUid: coinUid, CurrencyCode: currencyCode, Timestamp: timestamp}).First(&price).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, repoError(err)
	}
	return &price, nil
}

// SaveHistoricalPrice ...
func (repo *HistoricalPriceRepository) SaveHistoricalPrice(price model.CoinHistoricalPrice) error {
	record := model.CoinHistoricalPrice{CoinUid: price.CoinUid, CurrencyCode: price.CurrencyCode, Timestamp: price.Timestamp}
	if err := repo.DB.Where(&record).Assign(price).FirstOrCreate(&record).Error; err != nil {
		logger.Error("Error with repository SaveHistoricalPrice for %s : %s", price.CoinUid, err)
		return repoError(err)
	}
	return nil
}
