package utility

import (
	"net/http"

	Config "market-adapter/config"
)

type MetaData struct {
	Type, Endpoint, Action string
}

// GetRequestMetaData ... resolves a named provider operation to its endpoint
func GetRequestMetaData(request string, config Config.Data) MetaData {
	switch request {
	case "allCoins":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/coins/list",
		}
	case "allBlockchains":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/blockchains/list",
		}
	case "allTokens":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/tokens/list",
		}
	case "coinPrices":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/coins/prices",
		}
	case "historicalPrice":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/coins/price-history",
		}
	case "chartPoints":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.MarketDataService,
			Action:   "/coins/price-chart",
		}
	case "customCurrencies":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.CustomCurrencyService,
			Action:   "/currencies",
		}
	default:
		return MetaData{}
	}
}
