package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	UserID    string     `gorm:"uniqueIndex"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem snapshots the game at add-to-cart time. EffectivePrice starts at
// the list price and is lowered by discount application.
type CartItem struct {
	ID             uint   `gorm:"primaryKey"`
	CartID         uint   `gorm:"index"`
	GameID         string `gorm:"index"`
	GameName       string
	SellerID       string
	UnitPrice      float64
	EffectivePrice float64
	Quantity       int
	AddedAt        time.Time
}
