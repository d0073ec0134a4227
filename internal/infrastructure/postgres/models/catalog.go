package models

import (
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog tables are owned by the merchant back office; this service only reads them.

type MerchantModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	LegalName string
	BIN       string `gorm:"column:bin;type:varchar(12)"`
	IBAN      string `gorm:"column:iban;type:varchar(34)"`
	Address   string
	Phone     string `gorm:"type:varchar(32)"`
}

func (MerchantModel) TableName() string { return "merchants" }

type PaymentMethodModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	MerchantID         string `gorm:"type:uuid;not null;index"`
	Name               string
	BaseType           domain.BaseMethodType `gorm:"type:varchar(16);not null"`
	IsActive           bool                  `gorm:"not null;default:true"`
	GatewayMerchantID  string
	EncryptedSecretKey string
	LoanProduct        string
	LoanPartner        string
	GoodsCategory      string
	LoanPeriod         int
}

func (PaymentMethodModel) TableName() string { return "payment_methods" }

type AirlinkModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	MerchantID  string `gorm:"type:uuid;not null;index"`
	ChannelID   string
	Name        string
	PublicURL   string
	ImageURL    string
	IsPublished bool
	DateStart   *time.Time
	DateEnd     *time.Time
	Items       []AirlinkItemModel `gorm:"foreignKey:AirlinkID;references:ID"`
}

func (AirlinkModel) TableName() string { return "airlinks" }

type AirlinkItemModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	AirlinkID string          `gorm:"type:uuid;not null;index"`
	VariantID string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null;default:1"`
}

func (AirlinkItemModel) TableName() string { return "airlink_items" }
