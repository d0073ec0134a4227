package domain

import "time"

const CommerceOrderStatusFulfilled = "FULFILLED"

// CommerceOrder is the part of a commerce-system order the confirmation flow reads.
type CommerceOrder struct {
	ID       string
	Status   string
	Metadata map[string]string
}

// OrderConfirmation counts how many delivery confirmation codes were issued for an order.
type OrderConfirmation struct {
	ID         string
	OrderID    string
	MerchantID string
	CustomerID string
	Code       string
	Trials     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
