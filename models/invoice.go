package models

import "time"

// Invoice is the immutable receipt of a completed checkout. Rows are created
// exactly once and never updated.
type Invoice struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	UserID    string        `gorm:"index;not null" json:"user_id"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	SubTotal  float64       `json:"sub_total"`
	Tax       float64       `json:"tax"`
	Total     float64       `json:"total"`
	CreatedAt time.Time     `json:"created_at"`
}

type InvoiceItem struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	InvoiceID      string `gorm:"index" json:"-"`
	GameID         string `json:"game_id"`
	GameName       string `json:"game_name"`
	SellerID       string `json:"seller_id"`
	UnitPrice      float64 `json:"unit_price"`
	EffectivePrice float64 `json:"effective_price"`
	Quantity       int     `json:"quantity"`
}

// Purchase is one owned copy of a game in a user's library. PricePaid is the
// effective per-unit price at checkout and is the base for refunds.
type Purchase struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UserID     string `gorm:"index;not null" json:"user_id"`
	GameID     string `gorm:"index;not null" json:"game_id"`
	GameName   string `json:"game_name"`
	SellerID   string `json:"seller_id"`
	PricePaid  float64 `json:"price_paid"`
	Source     string  `gorm:"type:VARCHAR(16)" json:"source"` // "checkout", "gift", "trade"
	AcquiredAt time.Time `json:"acquired_at"`
}
