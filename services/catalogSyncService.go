package services

import (
	"sync"

	"market-adapter/database"
	"market-adapter/dto"
	"market-adapter/model"
	"market-adapter/utility"
	"market-adapter/utility/constants"
	"market-adapter/utility/denoms"
	"market-adapter/utility/logger"
)

// CatalogSyncService ... Keeps the local coin/blockchain/token catalog fresh
// against the provider. A cycle either replaces the whole catalog and its
// markers or changes nothing.
type CatalogSyncService struct {
	gateway     IProviderGateway
	catalogRepo database.ICatalogRepository
	markerRepo  database.ISyncMarkerRepository
	listener    CatalogListener
	mu          sync.Mutex
}

// NewCatalogSyncService ...
func NewCatalogSyncService(gateway IProviderGateway, catalogRepo database.ICatalogRepository, markerRepo database.ISyncMarkerRepository) *CatalogSyncService {
	return &CatalogSyncService{
		gateway:     gateway,
		catalogRepo: catalogRepo,
		markerRepo:  markerRepo,
	}
}

// SetListener ...
func (service *CatalogSyncService) SetListener(listener CatalogListener) {
	service.listener = listener
}

// Sync ... compares the supplied freshness tokens against the persisted
// markers and replaces the catalog when any differ. Tokens are opaque; only
// equality matters. Concurrent calls serialize, so a latecomer with the same
// tokens no-ops once the first cycle lands.
func (service *CatalogSyncService) Sync(coinsToken, blockchainsToken, tokensToken string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	outdated, err := service.outdated(coinsToken, blockchainsToken, tokensToken)
	if err != nil {
		return err
	}
	if !outdated {
		return nil
	}

	var (
		wg             sync.WaitGroup
		coins          []dto.CoinResponse
		blockchains    []dto.BlockchainResponse
		tokens         []dto.TokenResponse
		coinsErr       error
		blockchainsErr error
		tokensErr      error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		coins, coinsErr = service.gateway.AllCoins()
	}()
	go func() {
		defer wg.Done()
		blockchains, blockchainsErr = service.gateway.AllBlockchains()
	}()
	go func() {
		defer wg.Done()
		tokens, tokensErr = service.gateway.AllTokens()
	}()
	wg.Wait()

	for _, err := range []error{coinsErr, blockchainsErr, tokensErr} {
		if err != nil {
			logger.Error("%s : %s", utility.CATALOG_SYNC_ERR, err)
			return err
		}
	}

	coinEntities := make([]model.Coin, 0, len(coins)+len(denoms.InjectedCoins))
	for _, response := range coins {
		coinEntities = append(coinEntities, response.Coin())
	}
	blockchainEntities := make([]model.Blockchain, 0, len(blockchains))
	for _, response := range blockchains {
		blockchainEntities = append(blockchainEntities, response.Blockchain())
	}
	tokenEntities := make([]model.Token, 0, len(tokens)+len(denoms.InjectedTokens))
	for _, response := range tokens {
		tokenEntities = append(tokenEntities, response.Token())
	}
	coinEntities = append(coinEntities, denoms.InjectedCoins...)
	tokenEntities = append(tokenEntities, denoms.InjectedTokens...)

	if err := service.catalogRepo.ReplaceCatalog(coinEntities, blockchainEntities, tokenEntities); err != nil {
		logger.Error("%s : %s", utility.CATALOG_SYNC_ERR, err)
		return err
	}
	if err := service.saveMarkers(coinsToken, blockchainsToken, tokensToken); err != nil {
		return err
	}

	logger.Info("Catalog sync completed : %d coins, %d blockchains, %d tokens",
		len(coinEntities), len(blockchainEntities), len(tokenEntities))
	if service.listener != nil {
		service.listener.CatalogUpdated()
	}
	return nil
}

// SyncInfo ... current markers for diagnostics
func (service *CatalogSyncService) SyncInfo() model.SyncInfo {
	coinsMarker, _ := service.markerRepo.GetMarker(constants.COINS_SYNC_MARKER)
	blockchainsMarker, _ := service.markerRepo.GetMarker(constants.BLOCKCHAINS_SYNC_MARKER)
	tokensMarker, _ := service.markerRepo.GetMarker(constants.TOKENS_SYNC_MARKER)
	return model.SyncInfo{
		CoinsTimestamp:       coinsMarker,
		BlockchainsTimestamp: blockchainsMarker,
		TokensTimestamp:      tokensMarker,
	}
}

func (service *CatalogSyncService) outdated(coinsToken, blockchainsToken, tokensToken string) (bool, error) {
	coinsMarker, err := service.markerRepo.GetMarker(constants.COINS_SYNC_MARKER)
	if err != nil {
		return false, err
	}
	blockchainsMarker, err := service.markerRepo.GetMarker(constants.BLOCKCHAINS_SYNC_MARKER)
	if err != nil {
		return false, err
	}
	tokensMarker, err := service.markerRepo.GetMarker(constants.TOKENS_SYNC_MARKER)
	if err != nil {
		return false, err
	}
	return coinsMarker != coinsToken || blockchainsMarker != blockchainsToken || tokensMarker != tokensToken, nil
}

func (service *CatalogSyncService) saveMarkers(coinsToken, blockchainsToken, tokensToken string) error {
	if err := service.markerRepo.SaveMarker(constants.COINS_SYNC_MARKER, coinsToken); err != nil {
		return err
	}
	if err := service.markerRepo.SaveMarker(constants.BLOCKCHAINS_SYNC_MARKER, blockchainsToken); err != nil {
		return err
	}
	return service.markerRepo.SaveMarker(constants.TOKENS_SYNC_MARKER, tokensToken)
}
