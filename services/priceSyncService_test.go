package services

import (
	"testing"
	"time"

	"market-adapter/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func pricesFor(values map[string]int64) func(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
	return func(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
		prices := []model.CoinPrice{}
		for _, coinUid := range coinUids {
			value, ok := values[coinUid]
			if !ok {
				continue
			}
			prices = append(prices, model.CoinPrice{
				CoinUid:      coinUid,
				CurrencyCode: currencyCode,
				Value:        decimal.NewFromInt(value),
				Timestamp:    time.Now().Unix(),
			})
		}
		return prices, nil
	}
}

func waitForPriceCalls(t *testing.T, gateway *stubGateway, count int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return gateway.priceCallCount() >= count
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPriceMapStreamSharesOneFetchPerCurrency(t *testing.T) {
	gateway := &stubGateway{priceFn: pricesFor(map[string]int64{"bitcoin": 50000, "ethereum": 3000})}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	first := service.PriceMapStream([]string{"bitcoin"}, "USD")
	defer first.Close()
	waitForPriceCalls(t, gateway, 1)

	// a second subscriber joins the running task without triggering a fetch
	second := service.PriceMapStream([]string{"bitcoin", "ethereum"}, "USD")
	defer second.Close()
	require.Equal(t, 1, gateway.priceCallCount())

	service.Refresh("USD")
	waitForPriceCalls(t, gateway, 2)

	call := gateway.lastPriceCall()
	require.Equal(t, []string{"bitcoin", "ethereum"}, call.coinUids)
	require.Equal(t, "USD", call.currencyCode)
}

func TestPriceMapStreamFiltersPerSubscriber(t *testing.T) {
	gateway := &stubGateway{priceFn: pricesFor(map[string]int64{"bitcoin": 50000, "ethereum": 3000})}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	narrow := service.PriceMapStream([]string{"bitcoin"}, "EUR")
	defer narrow.Close()
	waitForPriceCalls(t, gateway, 1)

	wide := service.PriceMapStream([]string{"bitcoin", "ethereum"}, "EUR")
	defer wide.Close()
	service.Refresh("EUR")

	select {
	case update := <-wide.Updates():
		require.Contains(t, update, "bitcoin")
		require.Contains(t, update, "ethereum")
	case <-time.After(2 * time.Second):
		t.Fatal("no update delivered to the wide subscriber")
	}

	select {
	case update := <-narrow.Updates():
		require.Contains(t, update, "bitcoin")
		require.NotContains(t, update, "ethereum")
	case <-time.After(2 * time.Second):
		t.Fatal("no update delivered to the narrow subscriber")
	}
}

func TestLastCloseStopsPollingTask(t *testing.T) {
	gateway := &stubGateway{priceFn: pricesFor(map[string]int64{"bitcoin": 50000})}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	first := service.PriceMapStream([]string{"bitcoin"}, "USD")
	second := service.PriceMapStream([]string{"bitcoin"}, "USD")
	waitForPriceCalls(t, gateway, 1)

	first.Close()
	service.mu.Lock()
	_, alive := service.pollers["USD"]
	service.mu.Unlock()
	require.True(t, alive)

	second.Close()
	service.mu.Lock()
	_, alive = service.pollers["USD"]
	service.mu.Unlock()
	require.False(t, alive)

	// a refresh after teardown finds no task and fetches nothing
	calls := gateway.priceCallCount()
	service.Refresh("USD")
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, calls, gateway.priceCallCount())

	_, open := <-second.Updates()
	require.False(t, open)
}

func TestRefreshCoalescesWhileFetchInFlight(t *testing.T) {
	gate := make(chan struct{})
	released := false
	gateway := &stubGateway{}
	gateway.priceFn = func(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
		if !released {
			released = true
			<-gate
		}
		return pricesFor(map[string]int64{"bitcoin": 50000})(coinUids, currencyCode)
	}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	stream := service.PriceMapStream([]string{"bitcoin"}, "USD")
	defer stream.Close()
	waitForPriceCalls(t, gateway, 1)

	// three refreshes against a blocked fetch collapse into one follow-up
	service.Refresh("USD")
	service.Refresh("USD")
	service.Refresh("USD")
	close(gate)

	waitForPriceCalls(t, gateway, 2)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 2, gateway.priceCallCount())
}

func TestPriceStreamDeliversSingleCoin(t *testing.T) {
	gateway := &stubGateway{priceFn: pricesFor(map[string]int64{"bitcoin": 50000, "ethereum": 3000})}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	stream := service.PriceStream("bitcoin", "USD")
	defer stream.Close()

	select {
	case price := <-stream.Updates():
		require.Equal(t, "bitcoin", price.CoinUid)
		require.Equal(t, "USD", price.CurrencyCode)
		require.True(t, decimal.NewFromInt(50000).Equal(price.Value))
	case <-time.After(2 * time.Second):
		t.Fatal("no price delivered")
	}
}

func TestTwoSingleCoinStreamsShareOneBatchedFetch(t *testing.T) {
	gateway := &stubGateway{priceFn: pricesFor(map[string]int64{"btc": 2, "eth": 3})}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, 40*time.Millisecond)
	priceCache.SetListener(service)

	btcStream := service.PriceStream("btc", "EUR")
	defer btcStream.Close()
	ethStream := service.PriceStream("eth", "EUR")
	defer ethStream.Close()

	// the next tick fetches the union in one batched call
	require.Eventually(t, func() bool {
		gateway.mu.Lock()
		defer gateway.mu.Unlock()
		for _, call := range gateway.priceCalls {
			if len(call.coinUids) == 2 && call.currencyCode == "EUR" {
				return true
			}
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)

	select {
	case price := <-btcStream.Updates():
		require.Equal(t, "btc", price.CoinUid)
	case <-time.After(2 * time.Second):
		t.Fatal("no btc update delivered")
	}
	select {
	case price := <-ethStream.Updates():
		require.Equal(t, "eth", price.CoinUid)
	case <-time.After(2 * time.Second):
		t.Fatal("no eth update delivered")
	}
}

func TestFetchFailureKeepsStreamAlive(t *testing.T) {
	calls := 0
	gateway := &stubGateway{}
	gateway.priceFn = func(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
		calls++
		if calls == 1 {
			return nil, errProvider
		}
		return pricesFor(map[string]int64{"bitcoin": 50000})(coinUids, currencyCode)
	}
	priceCache := NewPriceCacheService()
	service := NewPriceSyncService(gateway, priceCache, time.Hour)
	priceCache.SetListener(service)

	stream := service.PriceMapStream([]string{"bitcoin"}, "USD")
	defer stream.Close()
	waitForPriceCalls(t, gateway, 1)

	service.Refresh("USD")
	select {
	case update := <-stream.Updates():
		require.Contains(t, update, "bitcoin")
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not recover after a failed fetch")
	}
}
