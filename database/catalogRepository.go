package database

import (
	"market-adapter/model"
	"market-adapter/utility/logger"
)

// ICatalogRepository ... Interface definition for the catalog store
type ICatalogRepository interface {
	IRepository
	ReplaceCatalog(coins []model.Coin, blockchains []model.Blockchain, tokens []model.Token) error
	AllCoins() ([]model.Coin, error)
	CoinByUid(uid string) (*model.Coin, error)
	BlockchainByUid(uid string) (*model.Blockchain, error)
	BlockchainsByUids(uids []string) ([]model.Blockchain, error)
	Token(coinUid, blockchainUid string) (*model.Token, error)
	TokensByReference(reference string) ([]model.Token, error)
}

// CatalogRepository ... Repository definition for the coin/blockchain/token catalog
type CatalogRepository struct {
	BaseRepository
}

// ReplaceCatalog ... Swaps the full catalog in one transaction. Either every
// table reflects the new collections or none does.
func (repo *CatalogRepository) ReplaceCatalog(coins []model.Coin, blockchains []model.Blockchain, tokens []model.Token) error {
	tx := repo.DB.Begin()
	if tx.Error != nil {
		return repoError(tx.Error)
	}

	if err := tx.Delete(&model.Coin{}).Error; err != nil {
		tx.Rollback()
		return repoError(err)
	}
	if err := tx.Delete(&model.Blockchain{}).Error; err != nil {
		tx.Rollback()
		return repoError(err)
	}
	if err := tx.Delete(&model.Token{}).Error; err != nil {
		tx.Rollback()
		return repoError(err)
	}

	for _, coin := range coins {
		if err := tx.Create(&coin).Error; err != nil {
			logger.Error("Error with repository ReplaceCatalog, coin %s : %s", coin.Uid, err)
			tx.Rollback()
			return repoError(err)
		}
	}
	for _, blockchain := range blockchains {
		if err := tx.Create(&blockchain).Error; err != nil {
			logger.Error("Error with repository ReplaceCatalog, blockchain %s : %s", blockchain.Uid, err)
			tx.Rollback()
			return repoError(err)
		}
	}
	for _, token := range tokens {
		if err := tx.Create(&token).Error; err != nil {
			logger.Error("Error with repository ReplaceCatalog, token %s/%s : %s", token.CoinUid, token.BlockchainUid, err)
			tx.Rollback()
			return repoError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return repoError(err)
	}
	return nil
}

// AllCoins ...
func (repo *CatalogRepository) AllCoins() ([]model.Coin, error) {
	coins := []model.Coin{}
	if err := repo.Fetch(&coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// CoinByUid ... returns nil without error when the coin is not in the catalog
func (repo *CatalogRepository) CoinByUid(uid string) (*model.Coin, error) {
	coin := model.Coin{}
	if err := repo.DB.Where(&model.Coin{Uid: uid}).First(&coin).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, repoError(err)
	}
	return &coin, nil
}

// BlockchainByUid ...
func (repo *CatalogRepository) BlockchainByUid(uid string) (*model.Blockchain, error) {
	blockchain := model.Blockchain{}
	if err := repo.DB.Where(&model.Blockchain{Uid: uid}).First(&blockchain).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, repoError(err)
	}
	return &blockchain, nil
}

// BlockchainsByUids ...
func (repo *CatalogRepository) BlockchainsByUids(uids []string) ([]model.Blockchain, error) {
	blockchains := []model.Blockchain{}
	if err := repo.DB.Where("uid IN (?)", uids).Find(&blockchains).Error; err != nil {
		return nil, repoError(err)
	}
	return blockchains, nil
}

// Token ...
func (repo *CatalogRepository) Token(coinUid, blockchainUid string) (*model.Token, error) {
	token := model.Token{}
	if err := repo.DB.Where(&model.Token{CoinUid: coinUid, BlockchainUid: blockchainUid}).First(&token).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, repoError(err)
	}
	return &token, nil
}

// TokensByReference ... matches contract address or chain symbol
func (repo *CatalogRepository) TokensByReference(reference string) ([]model.Token, error) {
	tokens := []model.Token{}
	if err := repo.DB.Where(&model.Token{Reference: reference}).Find(&tokens).Error; err != nil {
		return nil, repoError(err)
	}
	return tokens, nil
}
