package model

// Token ... A coin's representation on a specific blockchain. Reference holds
// the contract address or chain symbol depending on the token type.
type Token struct {
	CoinUid       string `gorm:"primary_key" json:"coin_uid"`
	BlockchainUid string `gorm:"primary_key" json:"blockchain_uid"`
	Type          string `json:"type"`
	Decimals      int    `json:"decimals"`
	Reference     string `gorm:"index:reference" json:"reference,omitempty"`
}

// TableName ...
func (Token) TableName() string {
	return "tokens"
}
