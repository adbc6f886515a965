package models

import "time"

type Game struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	SellerID  string  `gorm:"index;not null" json:"seller_id"`
	Stock     int     `json:"stock"`
	Reviews   []Review `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	GameID   string `gorm:"index" json:"-"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
}
