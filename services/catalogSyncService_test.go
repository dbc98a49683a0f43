package services

import (
	"testing"

	"market-adapter/dto"
	"market-adapter/utility/constants"
	"market-adapter/utility/denoms"

	"github.com/stretchr/testify/require"
)

type catalogRecorder struct {
	notified int
}

func (recorder *catalogRecorder) CatalogUpdated() {
	recorder.notified++
}

func testCatalogPayload() ([]dto.CoinResponse, []dto.BlockchainResponse, []dto.TokenResponse) {
	rank := 1
	coins := []dto.CoinResponse{
		{Uid: "bitcoin", Name: "Bitcoin", Code: "btc", MarketCapRank: &rank},
		{Uid: "tether", Name: "Tether", Code: "usdt"},
	}
	blockchains := []dto.BlockchainResponse{
		{Uid: "ethereum", Name: "Ethereum"},
		{Uid: "binancecoin", Name: "BNB Beacon Chain"},
	}
	tokens := []dto.TokenResponse{
		{CoinUid: "tether", BlockchainUid: "ethereum", Type: constants.TOKEN_TYPE_EIP20, Decimals: 6,
			Address: "0xdac17f958d2ee523a2206206994597c13d831ec7", Symbol: "USDT"},
		{CoinUid: "tether", BlockchainUid: "binancecoin", Type: constants.TOKEN_TYPE_BEP2, Decimals: 8,
			Address: "0xignored", Symbol: "USDT-6D8"},
	}
	return coins, blockchains, tokens
}

func TestSyncReplacesCatalogWhenTokensDiffer(t *testing.T) {
	gateway := &stubGateway{}
	gateway.coins, gateway.blockchains, gateway.tokens = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}
	markerRepo := newMemMarkerRepository()
	recorder := &catalogRecorder{}

	service := NewCatalogSyncService(gateway, catalogRepo, markerRepo)
	service.SetListener(recorder)

	require.NoError(t, service.Sync("c1", "b1", "t1"))
	require.Equal(t, 1, catalogRepo.replaceCalls)
	require.Equal(t, 1, recorder.notified)

	info := service.SyncInfo()
	require.Equal(t, "c1", info.CoinsTimestamp)
	require.Equal(t, "b1", info.BlockchainsTimestamp)
	require.Equal(t, "t1", info.TokensTimestamp)

	// provider codes land uppercased
	coin, err := service.catalogRepo.CoinByUid("bitcoin")
	require.NoError(t, err)
	require.NotNil(t, coin)
	require.Equal(t, "BTC", coin.Code)
}

func TestSyncNoopsWhenTokensMatch(t *testing.T) {
	gateway := &stubGateway{}
	gateway.coins, gateway.blockchains, gateway.tokens = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}
	markerRepo := newMemMarkerRepository()

	service := NewCatalogSyncService(gateway, catalogRepo, markerRepo)
	require.NoError(t, service.Sync("c1", "b1", "t1"))
	require.Equal(t, 3, gateway.catalogCalls)

	require.NoError(t, service.Sync("c1", "b1", "t1"))
	require.Equal(t, 3, gateway.catalogCalls)
	require.Equal(t, 1, catalogRepo.replaceCalls)
}

func TestSyncSingleChangedTokenTriggersFullReplace(t *testing.T) {
	gateway := &stubGateway{}
	gateway.coins, gateway.blockchains, gateway.tokens = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}
	markerRepo := newMemMarkerRepository()

	service := NewCatalogSyncService(gateway, catalogRepo, markerRepo)
	require.NoError(t, service.Sync("c1", "b1", "t1"))
	require.NoError(t, service.Sync("c1", "b1", "t2"))
	require.Equal(t, 2, catalogRepo.replaceCalls)
	require.Equal(t, "t2", service.SyncInfo().TokensTimestamp)
}

func TestSyncAbortsWhollyOnPartialFailure(t *testing.T) {
	gateway := &stubGateway{tokensErr: errProvider}
	gateway.coins, gateway.blockchains, _ = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}
	markerRepo := newMemMarkerRepository()

	service := NewCatalogSyncService(gateway, catalogRepo, markerRepo)
	require.Error(t, service.Sync("c1", "b1", "t1"))
	require.Equal(t, 0, catalogRepo.replaceCalls)

	// markers stay untouched, the next call retries in full
	info := service.SyncInfo()
	require.Empty(t, info.CoinsTimestamp)

	gateway.tokensErr = nil
	_, _, gateway.tokens = testCatalogPayload()
	require.NoError(t, service.Sync("c1", "b1", "t1"))
	require.Equal(t, 1, catalogRepo.replaceCalls)
}

func TestSyncResolvesTokenReferences(t *testing.T) {
	gateway := &stubGateway{}
	gateway.coins, gateway.blockchains, gateway.tokens = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}

	service := NewCatalogSyncService(gateway, catalogRepo, newMemMarkerRepository())
	require.NoError(t, service.Sync("c1", "b1", "t1"))

	eip20, err := catalogRepo.Token("tether", "ethereum")
	require.NoError(t, err)
	require.NotNil(t, eip20)
	require.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", eip20.Reference)

	bep2, err := catalogRepo.Token("tether", "binancecoin")
	require.NoError(t, err)
	require.NotNil(t, bep2)
	require.Equal(t, "USDT-6D8", bep2.Reference)
}

func TestSyncAppendsInjectedAssets(t *testing.T) {
	gateway := &stubGateway{}
	gateway.coins, gateway.blockchains, gateway.tokens = testCatalogPayload()
	catalogRepo := &memCatalogRepository{}

	service := NewCatalogSyncService(gateway, catalogRepo, newMemMarkerRepository())
	require.NoError(t, service.Sync("c1", "b1", "t1"))

	for _, injected := range denoms.InjectedCoins {
		coin, err := catalogRepo.CoinByUid(injected.Uid)
		require.NoError(t, err)
		require.NotNil(t, coin)
	}
	for _, injected := range denoms.InjectedTokens {
		matches, err := catalogRepo.TokensByReference(injected.Reference)
		require.NoError(t, err)
		require.Len(t, matches, 1)
	}
}
