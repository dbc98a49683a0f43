package services

import (
	"sort"
	"sync"
	"time"

	"market-adapter/model"
	"market-adapter/utility/logger"

	uuid "github.com/satori/go.uuid"
)

const (
	defaultPriceSyncInterval = 30 * time.Second
	subscriberBufferSize     = 16
)

// PriceMapStream ... live subscription delivering price maps filtered to the
// subscriber's coin set. Close releases the subscription; when it is the last
// one for its currency the polling task is cancelled.
type PriceMapStream struct {
	updates chan map[string]model.CoinPrice
	close   func()
}

// Updates ... closed after Close
func (stream *PriceMapStream) Updates() <-chan map[string]model.CoinPrice {
	return stream.updates
}

// Close ...
func (stream *PriceMapStream) Close() {
	stream.close()
}

// CoinPriceStream ... live subscription for a single coin
type CoinPriceStream struct {
	updates chan model.CoinPrice
	close   func()
}

// Updates ... closed after Close
func (stream *CoinPriceStream) Updates() <-chan model.CoinPrice {
	return stream.updates
}

// Close ...
func (stream *CoinPriceStream) Close() {
	stream.close()
}

type subscriber struct {
	id       uuid.UUID
	coinUids map[string]bool
	updates  chan map[string]model.CoinPrice
	closed   bool
}

// currencyPoller drives one currency's polling task. Its fields are guarded
// by mu; ticks for one currency never overlap (a tick due while the previous
// fetch is still running is skipped, not queued).
type currencyPoller struct {
	currencyCode string
	interval     time.Duration
	manager      *PriceSyncService

	mu           sync.Mutex
	subscribers  map[uuid.UUID]*subscriber
	coinCounts   map[string]int
	stopChan     chan struct{}
	fetching     bool
	pendingFetch bool
	stopped      bool
}

func newCurrencyPoller(currencyCode string, interval time.Duration, manager *PriceSyncService) *currencyPoller {
	return &currencyPoller{
		currencyCode: currencyCode,
		interval:     interval,
		manager:      manager,
		subscribers:  map[uuid.UUID]*subscriber{},
		coinCounts:   map[string]int{},
		stopChan:     make(chan struct{}),
	}
}

func (poller *currencyPoller) run() {
	poller.fetch()

	ticker := time.NewTicker(poller.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			poller.fetch()
		case <-poller.stopChan:
			return
		}
	}
}

// fetch issues one batched price call for the current union of interest.
func (poller *currencyPoller) fetch() {
	poller.mu.Lock()
	if poller.fetching || poller.stopped {
		poller.mu.Unlock()
		return
	}
	coinUids := make([]string, 0, len(poller.coinCounts))
	for coinUid := range poller.coinCounts {
		coinUids = append(coinUids, coinUid)
	}
	if len(coinUids) == 0 {
		poller.mu.Unlock()
		return
	}
	poller.fetching = true
	poller.mu.Unlock()

	sort.Strings(coinUids)
	prices, err := poller.manager.gateway.CoinPrices(coinUids, poller.currencyCode)

	poller.mu.Lock()
	poller.fetching = false
	discard := poller.stopped
	rerun := poller.pendingFetch && !poller.stopped
	poller.pendingFetch = false
	poller.mu.Unlock()

	if err != nil {
		// stale values persist, the stream stays alive and the next tick retries
		logger.Warning("Price sync for %s failed : %s", poller.currencyCode, err)
		return
	}
	if !discard {
		poller.manager.priceCache.Update(poller.currencyCode, prices)
	}
	if rerun {
		poller.fetch()
	}
}

func (poller *currencyPoller) addSubscriber(sub *subscriber) {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	poller.subscribers[sub.id] = sub
	for coinUid := range sub.coinUids {
		poller.coinCounts[coinUid]++
	}
}

// removeSubscriber reports whether the poller became empty and was stopped.
func (poller *currencyPoller) removeSubscriber(sub *subscriber) bool {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	if _, ok := poller.subscribers[sub.id]; !ok {
		return false
	}
	delete(poller.subscribers, sub.id)
	for coinUid := range sub.coinUids {
		poller.coinCounts[coinUid]--
		if poller.coinCounts[coinUid] <= 0 {
			delete(poller.coinCounts, coinUid)
		}
	}
	if !sub.closed {
		sub.closed = true
		close(sub.updates)
	}
	if len(poller.subscribers) == 0 {
		poller.stopped = true
		close(poller.stopChan)
		return true
	}
	return false
}

// broadcast fans one batch update out to every subscriber, filtered to the
// coins each one asked for. Sends never block; a slow consumer misses
// intermediate updates rather than stalling the tick.
func (poller *currencyPoller) broadcast(prices []model.CoinPrice) {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	for _, sub := range poller.subscribers {
		filtered := map[string]model.CoinPrice{}
		for _, price := range prices {
			if sub.coinUids[price.CoinUid] {
				filtered[price.CoinUid] = price
			}
		}
		if len(filtered) == 0 {
			continue
		}
		select {
		case sub.updates <- filtered:
		default:
			logger.Debug("Dropped price update for a slow %s subscriber", poller.currencyCode)
		}
	}
}

// PriceSyncService ... Serves live price streams to any number of concurrent
// observers while holding network cost to one in-flight fetch per currency
// per tick. One polling task exists per currency with at least one
// subscriber; none for currencies without.
type PriceSyncService struct {
	gateway    IProviderGateway
	priceCache *PriceCacheService
	interval   time.Duration

	mu      sync.Mutex
	pollers map[string]*currencyPoller
}

// NewPriceSyncService ...
func NewPriceSyncService(gateway IProviderGateway, priceCache *PriceCacheService, interval time.Duration) *PriceSyncService {
	if interval <= 0 {
		interval = defaultPriceSyncInterval
	}
	return &PriceSyncService{
		gateway:    gateway,
		priceCache: priceCache,
		interval:   interval,
		pollers:    map[string]*currencyPoller{},
	}
}

// PriceMapStream ... the first subscription for a currency starts its polling
// task, which fetches immediately and then on every tick. Later subscribers
// expand the coin union for subsequent ticks; they do not trigger a refetch.
func (service *PriceSyncService) PriceMapStream(coinUids []string, currencyCode string) *PriceMapStream {
	id := uuid.NewV4()
	coinSet := map[string]bool{}
	for _, coinUid := range coinUids {
		coinSet[coinUid] = true
	}
	sub := &subscriber{
		id:       id,
		coinUids: coinSet,
		updates:  make(chan map[string]model.CoinPrice, subscriberBufferSize),
	}

	service.mu.Lock()
	poller, running := service.pollers[currencyCode]
	if !running {
		poller = newCurrencyPoller(currencyCode, service.interval, service)
		service.pollers[currencyCode] = poller
	}
	poller.addSubscriber(sub)
	service.mu.Unlock()

	if !running {
		go poller.run()
	}

	return &PriceMapStream{
		updates: sub.updates,
		close: func() {
			service.unsubscribe(currencyCode, sub)
		},
	}
}

// PriceStream ...
func (service *PriceSyncService) PriceStream(coinUid, currencyCode string) *CoinPriceStream {
	mapStream := service.PriceMapStream([]string{coinUid}, currencyCode)
	stream := &CoinPriceStream{
		updates: make(chan model.CoinPrice, subscriberBufferSize),
		close:   mapStream.Close,
	}
	go func() {
		defer close(stream.updates)
		for update := range mapStream.Updates() {
			price, ok := update[coinUid]
			if !ok {
				continue
			}
			select {
			case stream.updates <- price:
			default:
			}
		}
	}()
	return stream
}

// Refresh ... forces one out-of-cycle fetch for the currency's current coin
// union. A fetch already in flight absorbs the call: at most one follow-up
// fetch is queued behind it, never a concurrent duplicate.
func (service *PriceSyncService) Refresh(currencyCode string) {
	service.mu.Lock()
	poller := service.pollers[currencyCode]
	service.mu.Unlock()
	if poller == nil {
		return
	}

	poller.mu.Lock()
	if poller.fetching {
		poller.pendingFetch = true
		poller.mu.Unlock()
		return
	}
	poller.mu.Unlock()
	go poller.fetch()
}

// DidUpdate ... PriceCacheService listener; rebroadcasts one batch to the
// currency's subscribers
func (service *PriceSyncService) DidUpdate(currencyCode string, prices []model.CoinPrice) {
	service.mu.Lock()
	poller := service.pollers[currencyCode]
	service.mu.Unlock()
	if poller == nil {
		return
	}
	poller.broadcast(prices)
}

func (service *PriceSyncService) unsubscribe(currencyCode string, sub *subscriber) {
	service.mu.Lock()
	defer service.mu.Unlock()
	poller := service.pollers[currencyCode]
	if poller == nil {
		return
	}
	if poller.removeSubscriber(sub) {
		delete(service.pollers, currencyCode)
	}
}
