package model

// SyncMarker ... Opaque freshness token persisted per catalog facet. Updated
// only after a fully successful catalog fetch.
type SyncMarker struct {
	Key   string `gorm:"primary_key" json:"key"`
	Value string `json:"value"`
}

// TableName ...
func (SyncMarker) TableName() string {
	return "sync_markers"
}

// SyncInfo ... Current marker values for the three catalog facets
type SyncInfo struct {
	CoinsTimestamp       string `json:"coins_timestamp"`
	BlockchainsTimestamp string `json:"blockchains_timestamp"`
	TokensTimestamp      string `json:"tokens_timestamp"`
}
