package app

import (
	"context"
	"time"

	Config "market-adapter/config"
	"market-adapter/database"
	"market-adapter/dto"
	"market-adapter/model"
	"market-adapter/services"
	"market-adapter/tasks"
	"market-adapter/utility/cache"
	"market-adapter/utility/constants"

	"github.com/robfig/cron/v3"
	validation "gopkg.in/go-playground/validator.v9"
)

const defaultCustomCurrencyCacheExpiry = 10 * time.Minute

// MarketAdapter is the single entry point for embedding applications. It owns
// the database handle, the per-currency polling tasks and the custom currency
// refresh job, and it routes every currency-keyed read through the custom
// currency overlay.
type MarketAdapter struct {
	Config Config.Data

	database *database.Database
	cronJob  *cron.Cron

	catalogSync      *services.CatalogSyncService
	coins            *services.CoinService
	priceCache       *services.PriceCacheService
	priceSync        *services.PriceSyncService
	historicalPrices *services.HistoricalPriceService
	customCurrencies *services.CustomCurrencyService
	gateway          services.IProviderGateway
}

// New loads configuration from configDir, connects to the database, runs the
// schema migrations and starts the custom currency refresh job.
func New(configDir string) *MarketAdapter {
	config := Config.Data{}
	config.Init(configDir)

	db := &database.Database{Config: config}
	db.LoadDBInstance()
	db.RunDbMigrations()

	base := database.BaseRepository{Database: *db}
	catalogRepo := &database.CatalogRepository{BaseRepository: base}
	markerRepo := &database.SyncMarkerRepository{BaseRepository: base}
	customRepo := &database.CustomCurrencyRepository{BaseRepository: base}
	historicalRepo := &database.HistoricalPriceRepository{BaseRepository: base}

	validator := validation.New()
	gateway := services.NewProviderService(config, validator)

	adapter := build(config, gateway, catalogRepo, markerRepo, customRepo, historicalRepo)
	adapter.database = db
	adapter.cronJob = tasks.ExecuteCustomCurrencyCronJob(config, adapter.customCurrencies)
	return adapter
}

// build wires the service graph without touching the database connection or
// the scheduler, so tests can substitute the gateway and repositories.
func build(config Config.Data, gateway services.IProviderGateway,
	catalogRepo database.ICatalogRepository, markerRepo database.ISyncMarkerRepository,
	customRepo database.ICustomCurrencyRepository, historicalRepo database.IHistoricalPriceRepository) *MarketAdapter {

	expiry := config.ExpireCacheDuration
	if expiry <= 0 {
		expiry = defaultCustomCurrencyCacheExpiry
	}
	purge := config.PurgeCacheInterval
	if purge <= 0 {
		purge = expiry
	}

	priceCache := services.NewPriceCacheService()
	priceSync := services.NewPriceSyncService(gateway, priceCache, config.PriceSyncInterval)
	priceCache.SetListener(priceSync)

	return &MarketAdapter{
		Config:           config,
		catalogSync:      services.NewCatalogSyncService(gateway, catalogRepo, markerRepo),
		coins:            services.NewCoinService(catalogRepo),
		priceCache:       priceCache,
		priceSync:        priceSync,
		historicalPrices: services.NewHistoricalPriceService(gateway, historicalRepo),
		customCurrencies: services.NewCustomCurrencyService(cache.Initialize(expiry, purge), gateway, customRepo),
		gateway:          gateway,
	}
}

// Close stops the refresh job and releases the database connection. Live
// price streams keep their own lifecycle and are closed by their holders.
func (adapter *MarketAdapter) Close() {
	if adapter.cronJob != nil {
		adapter.cronJob.Stop()
	}
	if adapter.database != nil {
		adapter.database.CloseDBInstance()
	}
}

// SyncCatalog replaces the stored catalog when any of the caller's version
// tokens differs from the stored ones. Matching tokens make it a no-op.
func (adapter *MarketAdapter) SyncCatalog(coinsToken, blockchainsToken, tokensToken string) error {
	return adapter.catalogSync.Sync(coinsToken, blockchainsToken, tokensToken)
}

// SyncInfo ...
func (adapter *MarketAdapter) SyncInfo() model.SyncInfo {
	return adapter.catalogSync.SyncInfo()
}

// SetCatalogListener registers the observer notified after each applied sync.
func (adapter *MarketAdapter) SetCatalogListener(listener services.CatalogListener) {
	adapter.catalogSync.SetListener(listener)
}

// AllCoins ...
func (adapter *MarketAdapter) AllCoins() ([]model.Coin, error) {
	return adapter.coins.AllCoins()
}

// Coin ...
func (adapter *MarketAdapter) Coin(uid string) (*model.Coin, error) {
	return adapter.coins.Coin(uid)
}

// Blockchain ...
func (adapter *MarketAdapter) Blockchain(uid string) (*model.Blockchain, error) {
	return adapter.coins.Blockchain(uid)
}

// Blockchains ...
func (adapter *MarketAdapter) Blockchains(uids []string) ([]model.Blockchain, error) {
	return adapter.coins.Blockchains(uids)
}

// Token ...
func (adapter *MarketAdapter) Token(coinUid, blockchainUid string) (*model.Token, error) {
	return adapter.coins.Token(coinUid, blockchainUid)
}

// TokensByReference ...
func (adapter *MarketAdapter) TokensByReference(reference string) ([]model.Token, error) {
	return adapter.coins.TokensByReference(reference)
}

// CurrentPrice returns the cached price, overlay applied. nil means no price
// is cached yet for the underlying currency.
func (adapter *MarketAdapter) CurrentPrice(coinUid, currencyCode string) (*model.CoinPrice, error) {
	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) (*model.CoinPrice, error) {
			return adapter.priceCache.Get(coinUid, currencyCode), nil
		},
		services.ConvertCoinPriceRef)
}

// CurrentPriceMap returns cached prices keyed by coin uid, overlay applied.
// Coins with no cached price are absent from the map.
func (adapter *MarketAdapter) CurrentPriceMap(coinUids []string, currencyCode string) (map[string]model.CoinPrice, error) {
	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) (map[string]model.CoinPrice, error) {
			return adapter.priceCache.GetMany(coinUids, currencyCode), nil
		},
		services.ConvertCoinPriceMap)
}

// PriceStream subscribes to live updates for one coin. For custom currencies
// the underlying subscription runs in the baseline currency and every emitted
// value is repriced.
func (adapter *MarketAdapter) PriceStream(coinUid, currencyCode string) (*services.CoinPriceStream, error) {
	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) (*services.CoinPriceStream, error) {
			return adapter.priceSync.PriceStream(coinUid, currencyCode), nil
		},
		services.ConvertCoinPriceStream)
}

// PriceMapStream subscribes to live updates for a coin set.
func (adapter *MarketAdapter) PriceMapStream(coinUids []string, currencyCode string) (*services.PriceMapStream, error) {
	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) (*services.PriceMapStream, error) {
			return adapter.priceSync.PriceMapStream(coinUids, currencyCode), nil
		},
		services.ConvertPriceMapStream)
}

// RefreshPrices forces an immediate fetch for the polling task serving
// currencyCode. Custom currencies poll in the baseline currency, so the
// refresh targets that task.
func (adapter *MarketAdapter) RefreshPrices(currencyCode string) {
	target := currencyCode
	if custom, err := adapter.customCurrencies.CustomCurrency(currencyCode); err == nil && custom != nil {
		target = constants.BASELINE_CURRENCY
	}
	adapter.priceSync.Refresh(target)
}

// HistoricalPrice returns the price of a coin at a point in time, overlay
// applied. The lookup is bounded by HistoricalPriceTimeout and reports
// services.ErrTimeout when the bound is hit.
func (adapter *MarketAdapter) HistoricalPrice(coinUid, currencyCode string, timestamp int64) (*model.CoinHistoricalPrice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), services.HistoricalPriceTimeout)
	defer cancel()

	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) (*model.CoinHistoricalPrice, error) {
			return adapter.historicalPrices.HistoricalPrice(ctx, coinUid, currencyCode, timestamp)
		},
		services.ConvertHistoricalPrice)
}

// ChartPoints returns the chart series for one coin, overlay applied to both
// price and volume.
func (adapter *MarketAdapter) ChartPoints(coinUid, currencyCode, interval string, fromTimestamp int64) ([]dto.ChartPointResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), services.HistoricalPriceTimeout)
	defer cancel()

	return services.WithCustomCurrency(adapter.customCurrencies, currencyCode,
		func(currencyCode string) ([]dto.ChartPointResponse, error) {
			return adapter.gateway.ChartPoints(ctx, coinUid, currencyCode, interval, fromTimestamp)
		},
		services.ConvertChartPoints)
}

// RefreshCustomCurrencies triggers the refresh outside the schedule.
func (adapter *MarketAdapter) RefreshCustomCurrencies() error {
	return adapter.customCurrencies.RefreshCustomCurrencies()
}
