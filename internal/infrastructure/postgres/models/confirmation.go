package models

import "time"

type OrderConfirmationModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	OrderID    string `gorm:"type:varchar(128);not null;uniqueIndex"`
	MerchantID string `gorm:"type:uuid"`
	CustomerID string
	Code       string `gorm:"type:varchar(6)"`
	Trials     int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OrderConfirmationModel) TableName() string { return "order_confirmations" }
