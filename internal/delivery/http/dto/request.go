package dto

type BuyerRequest struct {
	CustomerID string `json:"customer_id"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
}

type CreateOrderRequest struct {
	PaymentMethodID string       `json:"payment_method_id"`
	Buyer           BuyerRequest `json:"buyer"`
}

type ChangeMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

type IdentityRequest struct {
	IIN         string `json:"iin"`
	MobilePhone string `json:"mobile_phone"`
}

type ValidateOTPRequest struct {
	IIN  string `json:"iin"`
	Code string `json:"code"`
}

type SelectOfferRequest struct {
	OfferID string `json:"offer_id"`
}

type ConfirmationRequest struct {
	MerchantID string `json:"merchant_id"`
}

type LoanHookOffer struct {
	Principal      float64  `json:"principal"`
	Period         int      `json:"period"`
	LoanType       string   `json:"loan_type"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	OuterID        string   `json:"product,omitempty"`
}

type LoanHookRequest struct {
	Status string          `json:"status"`
	Offers []LoanHookOffer `json:"offers,omitempty"`
}

type HoldHookRequest struct {
	Status        string `json:"status"`
	ReceiptNumber string `json:"receipt_number"`
}
