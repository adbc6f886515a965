package models

import "time"

// Discount is a flat percentage-off rule. Scope is a game id or ScopeAll.
// CodeKey is the lowercased code; the unique index makes code collision
// case-insensitive.
type Discount struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	Code       string `gorm:"not null" json:"code"`
	CodeKey    string `gorm:"uniqueIndex;not null" json:"-"`
	Scope      string `gorm:"not null" json:"scope"`
	Percentage float64 `json:"percentage"` // 0-100
	CreatedAt  time.Time `json:"created_at"`
}

const ScopeAll = "all"
