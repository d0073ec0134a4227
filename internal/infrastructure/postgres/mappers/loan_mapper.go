package mappers

import (
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainLoanRequest(model *models.LoanRequestModel) *domain.LoanRequest {
	return &domain.LoanRequest{
		ID:                  model.ID,
		TransactionID:       model.TransactionID,
		Status:              model.Status,
		IIN:                 model.IIN,
		MobilePhone:         model.MobilePhone,
		ExternalReferenceID: model.ExternalReferenceID,
		SelectedOfferID:     model.SelectedOfferID,
		RedirectURL:         model.RedirectURL,
		RawPayload:          []byte(model.RawPayload),
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMLoanRequest(req *domain.LoanRequest) *models.LoanRequestModel {
	var raw datatypes.JSON
	if len(req.RawPayload) > 0 {
		raw = datatypes.JSON(req.RawPayload)
	}
	return &models.LoanRequestModel{
		ID:                  req.ID,
		TransactionID:       req.TransactionID,
		Status:              req.Status,
		IIN:                 req.IIN,
		MobilePhone:         req.MobilePhone,
		ExternalReferenceID: req.ExternalReferenceID,
		SelectedOfferID:     req.SelectedOfferID,
		RedirectURL:         req.RedirectURL,
		RawPayload:          raw,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
}

func ToDomainLoanOffer(model *models.LoanOfferModel) *domain.LoanOffer {
	return &domain.LoanOffer{
		ID:             model.ID,
		LoanRequestID:  model.LoanRequestID,
		LoanType:       model.LoanType,
		Period:         model.Period,
		Amount:         model.Amount,
		MonthlyPayment: fromNull(model.MonthlyPayment),
		Suitable:       model.Suitable,
		OuterID:        model.OuterID,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMLoanOffer(offer *domain.LoanOffer) *models.LoanOfferModel {
	return &models.LoanOfferModel{
		ID:             offer.ID,
		LoanRequestID:  offer.LoanRequestID,
		LoanType:       offer.LoanType,
		Period:         offer.Period,
		Amount:         offer.Amount,
		MonthlyPayment: toNull(offer.MonthlyPayment),
		Suitable:       offer.Suitable,
		OuterID:        offer.OuterID,
		CreatedAt:      offer.CreatedAt,
	}
}
