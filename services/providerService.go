package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	Config "market-adapter/config"
	"market-adapter/dto"
	"market-adapter/model"
	"market-adapter/utility"
	"market-adapter/utility/apiClient"
	"market-adapter/utility/denoms"
	"market-adapter/utility/logger"

	validation "gopkg.in/go-playground/validator.v9"
)

// ProviderService ... HTTP binding for the market data provider. Malformed
// individual records are dropped from their batch, they never fail the batch.
type ProviderService struct {
	Config    Config.Data
	Validator *validation.Validate
}

// NewProviderService ...
func NewProviderService(config Config.Data, validator *validation.Validate) *ProviderService {
	return &ProviderService{
		Config:    config,
		Validator: validator,
	}
}

// AllCoins ... fetches the full coin collection
func (service *ProviderService) AllCoins() ([]dto.CoinResponse, error) {
	metaData := utility.GetRequestMetaData("allCoins", service.Config)

	responseData := []dto.CoinResponse{}
	if err := service.doRequest(context.Background(), metaData, metaData.Action, &responseData); err != nil {
		return nil, err
	}
	return filterValid(service.Validator, responseData, "coin"), nil
}

// AllBlockchains ... fetches the full blockchain collection
func (service *ProviderService) AllBlockchains() ([]dto.BlockchainResponse, error) {
	metaData := utility.GetRequestMetaData("allBlockchains", service.Config)

	responseData := []dto.BlockchainResponse{}
	if err := service.doRequest(context.Background(), metaData, metaData.Action, &responseData); err != nil {
		return nil, err
	}
	return filterValid(service.Validator, responseData, "blockchain"), nil
}

// AllTokens ... fetches the full token collection
func (service *ProviderService) AllTokens() ([]dto.TokenResponse, error) {
	metaData := utility.GetRequestMetaData("allTokens", service.Config)

	responseData := []dto.TokenResponse{}
	if err := service.doRequest(context.Background(), metaData, metaData.Action, &responseData); err != nil {
		return nil, err
	}
	return filterValid(service.Validator, responseData, "token"), nil
}

// CoinPrices ... one batched price call for the given coin set. Locally
// injected assets are appended to the result so they always resolve.
func (service *ProviderService) CoinPrices(coinUids []string, currencyCode string) ([]model.CoinPrice, error) {
	metaData := utility.GetRequestMetaData("coinPrices", service.Config)
	action := fmt.Sprintf("%s?uids=%s&currency=%s", metaData.Action,
		url.QueryEscape(strings.Join(coinUids, ",")), url.QueryEscape(currencyCode))

	responseData := []dto.CoinPriceResponse{}
	if err := service.doRequest(context.Background(), metaData, action, &responseData); err != nil {
		return nil, err
	}

	prices := []model.CoinPrice{}
	for _, response := range filterValid(service.Validator, responseData, "coin price") {
		prices = append(prices, response.CoinPrice(currencyCode))
	}
	return append(prices, denoms.InjectedCoinPrices(currencyCode)...), nil
}

// HistoricalCoinPrice ... price of one coin at a point in time. The context
// bounds the round trip; the overlay passes a short deadline on custom paths.
func (service *ProviderService) HistoricalCoinPrice(ctx context.Context, coinUid, currencyCode string, timestamp int64) (dto.HistoricalPriceResponse, error) {
	metaData := utility.GetRequestMetaData("historicalPrice", service.Config)
	action := fmt.Sprintf("%s?uid=%s&currency=%s&timestamp=%d", metaData.Action,
		url.QueryEscape(coinUid), url.QueryEscape(currencyCode), timestamp)

	responseData := dto.HistoricalPriceResponse{}
	if err := service.doRequest(ctx, metaData, action, &responseData); err != nil {
		return responseData, err
	}
	return responseData, nil
}

// ChartPoints ... chart series for one coin
func (service *ProviderService) ChartPoints(ctx context.Context, coinUid, currencyCode string, interval string, fromTimestamp int64) ([]dto.ChartPointResponse, error) {
	metaData := utility.GetRequestMetaData("chartPoints", service.Config)
	action := fmt.Sprintf("%s?uid=%s&currency=%s&interval=%s&from_timestamp=%d", metaData.Action,
		url.QueryEscape(coinUid), url.QueryEscape(currencyCode), url.QueryEscape(interval), fromTimestamp)

	responseData := []dto.ChartPointResponse{}
	if err := service.doRequest(ctx, metaData, action, &responseData); err != nil {
		return nil, err
	}
	return responseData, nil
}

// CustomCurrencies ... fetches the current custom currency records
func (service *ProviderService) CustomCurrencies() ([]dto.CustomCurrencyResponse, error) {
	metaData := utility.GetRequestMetaData("customCurrencies", service.Config)

	responseData := []dto.CustomCurrencyResponse{}
	if err := service.doRequest(context.Background(), metaData, metaData.Action, &responseData); err != nil {
		return nil, err
	}
	return filterValid(service.Validator, responseData, "custom currency"), nil
}

func (service *ProviderService) doRequest(ctx context.Context, metaData utility.MetaData, action string, responseData interface{}) error {
	APIClient := apiClient.New(nil, service.Config, metaData.Endpoint)
	APIRequest, err := APIClient.NewRequestWithContext(ctx, metaData.Type, action, nil)
	if err != nil {
		return err
	}
	if _, err := APIClient.Do(APIRequest, responseData); err != nil {
		logger.Error("%s : %s%s : %s", utility.PROVIDER_ERR, metaData.Endpoint, action, err)
		return err
	}
	return nil
}

// filterValid drops records that fail field validation and logs each drop.
func filterValid[T any](validator *validation.Validate, records []T, kind string) []T {
	valid := records[:0]
	for _, record := range records {
		if err := validator.Struct(record); err != nil {
			logger.Warning("%s : %s record %+v : %s", utility.MALFORMED_RECORD, kind, record, err)
			continue
		}
		valid = append(valid, record)
	}
	return valid
}
