package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"market-adapter/database"
	"market-adapter/dto"
	"market-adapter/model"
)

var errProvider = errors.New("provider unavailable")

type priceCall struct {
	coinUids     []string
	currencyCode string
}

// stubGateway records calls and answers from canned data. Methods without a
// canned answer return empty results.
type stubGateway struct {
	mu sync.Mutex

	coins       []dto.CoinResponse
	blockchains []dto.BlockchainResponse
	tokens      []dto.TokenResponse
	currencies  []dto.CustomCurrencyResponse

	coinsErr       error
	blockchainsErr error
	tokensErr      error

	priceFn      func(coinUids []string, currencyCode string) ([]model.CoinPrice, error)
	historicalFn func(ctx context.Context, coinUid, currencyCode string, timestamp int64) (dto.HistoricalPriceResponse, error)
	chartFn      func(ctx context.Context, coinUid, currencyCode, interval string, fromTimestamp int64) ([]dto.ChartPointResponse, error)

	catalogCalls    int
	priceCalls      []priceCall
	historicalCalls int
	currencyCalls   int
}

func (gateway *stubGateway) AllCoins() ([]dto.CoinResponse, error) {
	gateway.mu.Lock()
	gateway.catalogCalls++
	gateway.mu.Unlock()
	return gateway.coins, gateway.coinsErr
}

func (gateway *stubGateway) AllBlockchains() ([]dto.BlockchainResponse, error) {
	gateway.mu.Lock()
	gateway.catalogCalls++
	gateway.mu.Unlock()
	return gateway.blockchains, gateway.blockchainsErr
}

func (gateway *stubGateway) AllTokens() ([]dto.TokenResponse, error) {
	gateway.mu.Lock()
	gateway.catalogCalls++
	gateway.mu.Unlock()
	return gateway.tokens, gateway.tokensErr
}

func (gateway *stubGateway) CoinPrices(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
	gateway.mu.Lock()
	gateway.priceCalls = append(gateway.priceCalls, priceCall{coinUids: coinUids, currencyCode: currencyCode})
	priceFn := gateway.priceFn
	gateway.mu.Unlock()
	if priceFn == nil {
		return nil, nil
	}
	return priceFn(coinUids, currencyCode)
}

func (gateway *stubGateway) HistoricalCoinPrice(ctx context.Context, coinUid, currencyCode string, timestamp int64) (dto.HistoricalPriceResponse, error) {
	gateway.mu.Lock()
	gateway.historicalCalls++
	historicalFn := gateway.historicalFn
	gateway.mu.Unlock()
	if historicalFn == nil {
		return dto.HistoricalPriceResponse{}, nil
	}
	return historicalFn(ctx, coinUid, currencyCode, timestamp)
}

func (gateway *stubGateway) ChartPoints(ctx context.Context, coinUid, currencyCode, interval string, fromTimestamp int64) ([]dto.ChartPointResponse, error) {
	if gateway.chartFn == nil {
		return nil, nil
	}
	return gateway.chartFn(ctx, coinUid, currencyCode, interval, fromTimestamp)
}

func (gateway *stubGateway) CustomCurrencies() ([]dto.CustomCurrencyResponse, error) {
	gateway.mu.Lock()
	gateway.currencyCalls++
	gateway.mu.Unlock()
	return gateway.currencies, nil
}

func (gateway *stubGateway) priceCallCount() int {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return len(gateway.priceCalls)
}

func (gateway *stubGateway) lastPriceCall() priceCall {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return gateway.priceCalls[len(gateway.priceCalls)-1]
}

// memCatalogRepository keeps the replaced catalog in memory. The embedded
// interface covers the base repository surface the tests never touch.
type memCatalogRepository struct {
	database.IRepository

	mu           sync.Mutex
	coins        []model.Coin
	blockchains  []model.Blockchain
	tokens       []model.Token
	replaceCalls int
	replaceErr   error
}

func (repo *memCatalogRepository) ReplaceCatalog(coins []model.Coin, blockchains []model.Blockchain, tokens []model.Token) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.replaceCalls++
	if repo.replaceErr != nil {
		return repo.replaceErr
	}
	repo.coins = coins
	repo.blockchains = blockchains
	repo.tokens = tokens
	return nil
}

func (repo *memCatalogRepository) AllCoins() ([]model.Coin, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.coins, nil
}

func (repo *memCatalogRepository) CoinByUid(uid string) (*model.Coin, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, coin := range repo.coins {
		if coin.Uid == uid {
			return &coin, nil
		}
	}
	return nil, nil
}

func (repo *memCatalogRepository) BlockchainByUid(uid string) (*model.Blockchain, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, blockchain := range repo.blockchains {
		if blockchain.Uid == uid {
			return &blockchain, nil
		}
	}
	return nil, nil
}

func (repo *memCatalogRepository) BlockchainsByUids(uids []string) ([]model.Blockchain, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	wanted := map[string]bool{}
	for _, uid := range uids {
		wanted[uid] = true
	}
	matches := []model.Blockchain{}
	for _, blockchain := range repo.blockchains {
		if wanted[blockchain.Uid] {
			matches = append(matches, blockchain)
		}
	}
	return matches, nil
}

func (repo *memCatalogRepository) Token(coinUid, blockchainUid string) (*model.Token, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, token := range repo.tokens {
		if token.CoinUid == coinUid && token.BlockchainUid == blockchainUid {
			return &token, nil
		}
	}
	return nil, nil
}

func (repo *memCatalogRepository) TokensByReference(reference string) ([]model.Token, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	matches := []model.Token{}
	for _, token := range repo.tokens {
		if token.Reference == reference {
			matches = append(matches, token)
		}
	}
	return matches, nil
}

type memMarkerRepository struct {
	mu      sync.Mutex
	markers map[string]string
}

func newMemMarkerRepository() *memMarkerRepository {
	return &memMarkerRepository{markers: map[string]string{}}
}

func (repo *memMarkerRepository) GetMarker(key string) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.markers[key], nil
}

func (repo *memMarkerRepository) SaveMarker(key, value string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.markers[key] = value
	return nil
}

type memCustomCurrencyRepository struct {
	mu         sync.Mutex
	currencies map[string]model.CustomCurrency
	readCalls  int
}

func newMemCustomCurrencyRepository(currencies ...model.CustomCurrency) *memCustomCurrencyRepository {
	repo := &memCustomCurrencyRepository{currencies: map[string]model.CustomCurrency{}}
	for _, currency := range currencies {
		repo.currencies[currency.CurrencyCode] = currency
	}
	return repo
}

func (repo *memCustomCurrencyRepository) CustomCurrencyByCode(currencyCode string) (*model.CustomCurrency, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.readCalls++
	currency, ok := repo.currencies[currencyCode]
	if !ok {
		return nil, nil
	}
	return &currency, nil
}

func (repo *memCustomCurrencyRepository) SaveCustomCurrencies(currencies []model.CustomCurrency) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, currency := range currencies {
		repo.currencies[currency.CurrencyCode] = currency
	}
	return nil
}

type memHistoricalPriceRepository struct {
	mu     sync.Mutex
	prices map[string]model.CoinHistoricalPrice
}

func newMemHistoricalPriceRepository() *memHistoricalPriceRepository {
	return &memHistoricalPriceRepository{prices: map[string]model.CoinHistoricalPrice{}}
}

func historicalKey(coinUid, currencyCode string, timestamp int64) string {
	return coinUid + "|" + currencyCode + "|" + strconv.FormatInt(timestamp, 10)
}

func (repo *memHistoricalPriceRepository) HistoricalPrice(coinUid, currencyCode string, timestamp int64) (*model.CoinHistoricalPrice, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	price, ok := repo.prices[historicalKey(coinUid, currencyCode, timestamp)]
	if !ok {
		return nil, nil
	}
	return &price, nil
}

func (repo *memHistoricalPriceRepository) SaveHistoricalPrice(price model.CoinHistoricalPrice) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.prices[historicalKey(price.CoinUid, price.CurrencyCode, price.Timestamp)] = price
	return nil
}
