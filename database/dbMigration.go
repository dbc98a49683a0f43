package database

import (
	"market-adapter/model"
)

// RunDbMigrations ... This creates corresponding tables for entities on the db and watches them for field additions
func (database *Database) RunDbMigrations() {
	database.DB.AutoMigrate(&model.Coin{}, &model.Blockchain{}, &model.Token{}, &model.CoinPrice{},
		&model.CoinHistoricalPrice{}, &model.CustomCurrency{}, &model.SyncMarker{})
}
