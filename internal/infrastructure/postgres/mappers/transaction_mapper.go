package mappers

import (
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:                model.ID,
		Status:            model.Status,
		ExternalOrderID:   model.ExternalOrderID,
		MerchantID:        model.MerchantID,
		Amount:            model.Amount,
		Currency:          model.Currency,
		PaymentMethodID:   model.PaymentMethodID,
		HoldReference:     model.HoldReference,
		HoldReceiptNumber: model.HoldReceiptNumber,
		Synced:            model.Synced,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                tx.ID,
		Status:            tx.Status,
		ExternalOrderID:   tx.ExternalOrderID,
		MerchantID:        tx.MerchantID,
		Amount:            tx.Amount,
		Currency:          tx.Currency,
		PaymentMethodID:   tx.PaymentMethodID,
		HoldReference:     tx.HoldReference,
		HoldReceiptNumber: tx.HoldReceiptNumber,
		Synced:            tx.Synced,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
	}
}

func ToDomainCardRequest(model *models.CardRequestModel) *domain.CardRequest {
	return &domain.CardRequest{
		ID:               model.ID,
		TransactionID:    model.TransactionID,
		Status:           model.Status,
		RedirectURL:      model.RedirectURL,
		GatewayOrderID:   model.GatewayOrderID,
		GatewayPaymentID: model.GatewayPaymentID,
		GatewayReference: model.GatewayReference,
		CardPan:          model.CardPan,
		PaymentDate:      model.PaymentDate,
		ResultCode:       model.ResultCode,
		CanReject:        model.CanReject,
		FullAmount:       fromNull(model.FullAmount),
		NetAmount:        fromNull(model.NetAmount),
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMCardRequest(req *domain.CardRequest) *models.CardRequestModel {
	return &models.CardRequestModel{
		ID:               req.ID,
		TransactionID:    req.TransactionID,
		Status:           req.Status,
		RedirectURL:      req.RedirectURL,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewayReference: req.GatewayReference,
		CardPan:          req.CardPan,
		PaymentDate:      req.PaymentDate,
		ResultCode:       req.ResultCode,
		CanReject:        req.CanReject,
		FullAmount:       toNull(req.FullAmount),
		NetAmount:        toNull(req.NetAmount),
		CreatedAt:        req.CreatedAt,
		UpdatedAt:        req.UpdatedAt,
	}
}

func fromNull(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
