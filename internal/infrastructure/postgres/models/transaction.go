package models

import (
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionModel struct {
	ID                string                   `gorm:"primaryKey;type:uuid"`
	Status            domain.TransactionStatus `gorm:"type:varchar(32);not null;default:'NEW';index:idx_transactions_status_created,priority:1"`
	ExternalOrderID   string                   `gorm:"type:varchar(128);not null;uniqueIndex"`
	MerchantID        string                   `gorm:"type:varchar(64)"`
	Amount            decimal.Decimal          `gorm:"type:numeric(12,2);not null"`
	Currency          string                   `gorm:"type:varchar(3);not null"`
	PaymentMethodID   *string                  `gorm:"type:uuid"`
	HoldReference     *string                  `gorm:"type:varchar(128);index"`
	HoldReceiptNumber *string                  `gorm:"type:varchar(128)"`
	Synced            bool                     `gorm:"not null;default:false"`
	CreatedAt         time.Time                `gorm:"index:idx_transactions_status_created,priority:2"`
	UpdatedAt         time.Time
}

func (TransactionModel) TableName() string { return "transactions" }

type CardRequestModel struct {
	ID               string                   `gorm:"primaryKey;type:uuid"`
	TransactionID    string                   `gorm:"type:uuid;not null;uniqueIndex"`
	Status           domain.CardRequestStatus `gorm:"type:varchar(32);not null"`
	RedirectURL      string
	GatewayOrderID   string `gorm:"type:varchar(128)"`
	GatewayPaymentID string `gorm:"type:varchar(128)"`
	GatewayReference string `gorm:"type:varchar(128)"`
	CardPan          string `gorm:"type:varchar(32)"`
	PaymentDate      string `gorm:"type:varchar(64)"`
	ResultCode       *int
	CanReject        *int
	FullAmount       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	NetAmount        decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CardRequestModel) TableName() string { return "card_requests" }

type LoanRequestModel struct {
	ID                  string                   `gorm:"primaryKey;type:uuid"`
	TransactionID       string                   `gorm:"type:uuid;not null;uniqueIndex"`
	Status              domain.LoanRequestStatus `gorm:"type:varchar(32);not null"`
	IIN                 string                   `gorm:"column:iin;type:varchar(12)"`
	MobilePhone         string                   `gorm:"type:varchar(32)"`
	ExternalReferenceID *string                  `gorm:"type:varchar(64);index"`
	SelectedOfferID     *string                  `gorm:"type:uuid"`
	RedirectURL         string
	RawPayload          datatypes.JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (LoanRequestModel) TableName() string { return "loan_requests" }

type LoanOfferModel struct {
	ID             string              `gorm:"primaryKey;type:uuid"`
	LoanRequestID  string              `gorm:"type:uuid;not null;index"`
	LoanType       string              `gorm:"type:varchar(64)"`
	Period         int                 `gorm:"not null"`
	Amount         decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	MonthlyPayment decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Suitable       bool                `gorm:"not null;default:false"`
	OuterID        string              `gorm:"type:varchar(128)"`
	CreatedAt      time.Time
}

func (LoanOfferModel) TableName() string { return "loan_offers" }
