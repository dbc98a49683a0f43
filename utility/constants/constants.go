package constants

const (
	BASELINE_CURRENCY = "USD"

	TOKEN_TYPE_EIP20 = "eip20"
	TOKEN_TYPE_BEP2  = "bep2"
	TOKEN_TYPE_SPL   = "spl"

	COINS_SYNC_MARKER       = "coin-syncer-coins-last-sync"
	BLOCKCHAINS_SYNC_MARKER = "coin-syncer-blockchains-last-sync"
	TOKENS_SYNC_MARKER      = "coin-syncer-tokens-last-sync"

	CUSTOM_CURRENCY_CACHE_PREFIX = "custom-currency-"
	COIN_PRICE_SEPERATOR         = "|"
)
