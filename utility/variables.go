package utility

var (
	SYSTEM_ERR       = "Request could not be processed. Server encountered an error"
	PROVIDER_ERR     = "Market data provider request failed"
	CATALOG_SYNC_ERR = "Catalog sync aborted, no state was changed"
	TIMEOUT_ERR      = "Request timed out"
	RECORD_NOT_FOUND = "Record not found"
	MALFORMED_RECORD = "Malformed provider record dropped"
)
