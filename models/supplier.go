package models

import "time"

type Supplier struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Reliability float64 `json:"reliability"` // 0-1, fraction of ordered units actually delivered
}

type StockOrderStatus string

const (
	StockOrderPlaced    StockOrderStatus = "placed"
	StockOrderDelivered StockOrderStatus = "delivered"
	StockOrderCancelled StockOrderStatus = "cancelled"
)

type StockOrder struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	SellerID    string           `gorm:"index;not null" json:"seller_id"`
	SupplierID  string           `gorm:"not null" json:"supplier_id"`
	GameID      string           `gorm:"not null" json:"game_id"`
	Requested   int              `json:"requested"`
	Received    int              `json:"received"`
	Status      StockOrderStatus `gorm:"type:VARCHAR(16)" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	DeliveredAt time.Time        `json:"delivered_at"`
}
