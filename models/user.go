package models

import "time"

type Role string

const (
	RoleSeller   Role = "SELLER"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Role         Role   `gorm:"type:VARCHAR(16);not null" json:"role"`
	Description  string `json:"description"`
	Balance      float64 `json:"balance"`
	LastLogin    time.Time `json:"last_login"`
	Achievements []Achievement  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"achievements"`
	Wishlist     []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist"`
	Employees    []Employee     `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"employees,omitempty"`
	SalesHistory []SalesPoint   `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"sales_history,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Achievement is a per-user unlockable badge.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	UserID      string `gorm:"index" json:"-"`
	Code        string `gorm:"not null" json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type WishlistItem struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID string `gorm:"index" json:"-"`
	GameID string `gorm:"not null" json:"game_id"`
}

// SalesPoint is one entry in a seller's sales history, appended per checkout.
type SalesPoint struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	SellerID string    `gorm:"index" json:"-"`
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
}
