package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseMethodType is the payment rail behind a merchant payment method.
type BaseMethodType string

const (
	BaseMethodCard BaseMethodType = "CARD"
	BaseMethodLoan BaseMethodType = "LOAN"
)

func (t BaseMethodType) Valid() bool {
	switch t {
	case BaseMethodCard, BaseMethodLoan:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID         string
	MerchantID string
	Name       string
	BaseType   BaseMethodType
	IsActive   bool
	Card       CardMethodConfig
	Loan       LoanMethodConfig
}

// CardMethodConfig holds the card gateway terminal of a merchant. The secret is stored encrypted.
type CardMethodConfig struct {
	GatewayMerchantID  string
	EncryptedSecretKey string
}

type LoanMethodConfig struct {
	Product       string
	Partner       string
	GoodsCategory string
	Period        int
}

type Merchant struct {
	ID                     string
	LegalName              string
	BIN                    string
	IBAN                   string
	Address                string
	Phone                  string
	ActivePaymentMethodIDs []string
}

func (m *Merchant) AcceptsMethod(methodID string) bool {
	for _, id := range m.ActivePaymentMethodIDs {
		if id == methodID {
			return true
		}
	}
	return false
}

// Airlink is a merchant-curated, time-bounded checkout preset.
type Airlink struct {
	ID          string
	MerchantID  string
	ChannelID   string
	Name        string
	PublicURL   string
	ImageURL    string
	IsPublished bool
	DateStart   *time.Time
	DateEnd     *time.Time
	Items       []AirlinkItem
}

type AirlinkItem struct {
	VariantID string
	Price     decimal.Decimal
	Quantity  int
}

func (a *Airlink) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range a.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type Buyer struct {
	CustomerID string
	Phone      string
	Email      string
}
