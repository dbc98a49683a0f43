package model

// Blockchain ... Catalog entry for a chain that tokens are issued on
type Blockchain struct {
	Uid  string `gorm:"primary_key" json:"uid"`
	Name string `json:"name"`
	Url  string `json:"url,omitempty"`
}

// TableName ...
func (Blockchain) TableName() string {
	return "blockchains"
}
