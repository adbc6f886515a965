package models

import "time"

// SellerListing is a game offered on the seller-to-seller resale market.
// Listing a game does not remove it from the customer-facing catalog.
type SellerListing struct {
	ID        string `gorm:"primaryKey" json:"id"`
	GameID    string `gorm:"index;not null" json:"game_id"`
	GameName  string `json:"game_name"`
	SellerID  string `gorm:"index;not null" json:"seller_id"`
	Price     float64 `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer is an entry in a seller's client book.
type Customer struct {
	ID        string `gorm:"primaryKey" json:"id"`
	SellerID  string `gorm:"index;not null" json:"seller_id"`
	Name      string `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
