package services

import (
	"market-adapter/database"
	"market-adapter/model"
)

// CoinService exposes read access to the synced catalog.
type CoinService struct {
	Repository database.ICatalogRepository
}

// NewCoinService ...
func NewCoinService(repository database.ICatalogRepository) *CoinService {
	return &CoinService{Repository: repository}
}

// AllCoins ...
func (service *CoinService) AllCoins() ([]model.Coin, error) {
	return service.Repository.AllCoins()
}

// Coin ... nil when the uid is unknown
func (service *CoinService) Coin(uid string) (*model.Coin, error) {
	return service.Repository.CoinByUid(uid)
}

// Blockchain ... nil when the uid is unknown
func (service *CoinService) Blockchain(uid string) (*model.Blockchain, error) {
	return service.Repository.BlockchainByUid(uid)
}

// Blockchains ... bulk lookup, unknown uids are simply absent
func (service *CoinService) Blockchains(uids []string) ([]model.Blockchain, error) {
	return service.Repository.BlockchainsByUids(uids)
}

// Token ... nil when the pair is unknown
func (service *CoinService) Token(coinUid string, blockchainUid string) (*model.Token, error) {
	return service.Repository.Token(coinUid, blockchainUid)
}

// TokensByReference ...
func (service *CoinService) TokensByReference(reference string) ([]model.Token, error) {
	return service.Repository.TokensByReference(reference)
}
