package models

import "time"

type TradeStatus string

const (
	TradePending  TradeStatus = "PENDING"
	TradeAccepted TradeStatus = "ACCEPTED"
	TradeDeclined TradeStatus = "DECLINED"
)

type TradeRequest struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	FromUserID      string      `gorm:"index;not null" json:"from_user_id"`
	FromUserName    string      `json:"from_user_name"`
	ToUserID        string      `gorm:"index;not null" json:"to_user_id"`
	OfferedGameID   string      `json:"offered_game_id"`
	RequestedGameID string      `json:"requested_game_id"`
	Status          TradeStatus `gorm:"type:VARCHAR(16);default:'PENDING'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type Gift struct {
	ID           string `gorm:"primaryKey" json:"id"`
	FromUserID   string `gorm:"index;not null" json:"from_user_id"`
	FromUserName string `json:"from_user_name"`
	ToUserID     string `gorm:"index;not null" json:"to_user_id"`
	ToUserName   string `json:"to_user_name"`
	GameID       string `json:"game_id"`
	GameName     string `json:"game_name"`
	Message      string `json:"message"`
	Fee          float64 `json:"fee"`
	CreatedAt    time.Time `json:"created_at"`
}
