package models

import "time"

type EmployeeRole string

const (
	EmployeeSupport   EmployeeRole = "Support"
	EmployeeInventory EmployeeRole = "Inventory"
	EmployeeMarketing EmployeeRole = "Marketing"
)

type Employee struct {
	ID       string       `gorm:"primaryKey" json:"id"`
	SellerID string       `gorm:"index;not null" json:"-"`
	Name     string       `gorm:"not null" json:"name"`
	Role     EmployeeRole `gorm:"type:VARCHAR(16)" json:"role"`
	Salary   float64      `json:"salary"`
	HiredAt  time.Time    `json:"hired_at"`
}
