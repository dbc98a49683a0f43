package dto

import (
	"strings"

	"market-adapter/model"
	"market-adapter/utility/constants"
)

// CoinResponse ... Provider payload for one catalog coin
type CoinResponse struct {
	Uid           string  `json:"uid" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Code          string  `json:"code" validate:"required"`
	MarketCapRank *int    `json:"market_cap_rank"`
	CoinGeckoId   *string `json:"coingecko_id"`
}

// Coin ... transforms the provider payload into its entity form
func (response CoinResponse) Coin() model.Coin {
	return model.Coin{
		Uid:           response.Uid,
		Name:          response.Name,
		Code:          strings.ToUpper(response.Code),
		MarketCapRank: response.MarketCapRank,
		CoinGeckoId:   response.CoinGeckoId,
	}
}

// BlockchainResponse ... Provider payload for one blockchain
type BlockchainResponse struct {
	Uid  string `json:"uid" validate:"required"`
	Name string `json:"name" validate:"required"`
	Url  string `json:"url"`
}

// Blockchain ...
func (response BlockchainResponse) Blockchain() model.Blockchain {
	return model.Blockchain{
		Uid:  response.Uid,
		Name: response.Name,
		Url:  response.Url,
	}
}

// TokenResponse ... Provider payload for one token
type TokenResponse struct {
	CoinUid       string `json:"coin_uid" validate:"required"`
	BlockchainUid string `json:"blockchain_uid" validate:"required"`
	Type          string `json:"type" validate:"required"`
	Decimals      int    `json:"decimals"`
	Address       string `json:"address"`
	Symbol        string `json:"symbol"`
}

// Token ... transforms the provider payload into its entity form. The
// reference field is the contract address for contract-bearing token types
// and the chain symbol for bep2.
func (response TokenResponse) Token() model.Token {
	var reference string
	switch response.Type {
	case constants.TOKEN_TYPE_BEP2:
		reference = response.Symbol
	case constants.TOKEN_TYPE_EIP20, constants.TOKEN_TYPE_SPL:
		reference = response.Address
	default:
		reference = response.Address
	}

	return model.Token{
		CoinUid:       response.CoinUid,
		BlockchainUid: response.BlockchainUid,
		Type:          response.Type,
		Decimals:      response.Decimals,
		Reference:     reference,
	}
}
