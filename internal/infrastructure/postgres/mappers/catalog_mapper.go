package mappers

import (
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainAirlink(model *models.AirlinkModel) *domain.Airlink {
	items := make([]domain.AirlinkItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, domain.AirlinkItem{
			VariantID: item.VariantID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return &domain.Airlink{
		ID:          model.ID,
		MerchantID:  model.MerchantID,
		ChannelID:   model.ChannelID,
		Name:        model.Name,
		PublicURL:   model.PublicURL,
		ImageURL:    model.ImageURL,
		IsPublished: model.IsPublished,
		DateStart:   model.DateStart,
		DateEnd:     model.DateEnd,
		Items:       items,
	}
}

func ToDomainMerchant(model *models.MerchantModel, activeMethodIDs []string) *domain.Merchant {
	return &domain.Merchant{
		ID:                     model.ID,
		LegalName:              model.LegalName,
		BIN:                    model.BIN,
		IBAN:                   model.IBAN,
		Address:                model.Address,
		Phone:                  model.Phone,
		ActivePaymentMethodIDs: activeMethodIDs,
	}
}

func ToDomainPaymentMethod(model *models.PaymentMethodModel) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:         model.ID,
		MerchantID: model.MerchantID,
		Name:       model.Name,
		BaseType:   model.BaseType,
		IsActive:   model.IsActive,
		Card: domain.CardMethodConfig{
			GatewayMerchantID:  model.GatewayMerchantID,
			EncryptedSecretKey: model.EncryptedSecretKey,
		},
		Loan: domain.LoanMethodConfig{
			Product:       model.LoanProduct,
			Partner:       model.LoanPartner,
			GoodsCategory: model.GoodsCategory,
			Period:        model.LoanPeriod,
		},
	}
}

func ToDomainConfirmation(model *models.OrderConfirmationModel) *domain.OrderConfirmation {
	return &domain.OrderConfirmation{
		ID:         model.ID,
		OrderID:    model.OrderID,
		MerchantID: model.MerchantID,
		CustomerID: model.CustomerID,
		Code:       model.Code,
		Trials:     model.Trials,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
