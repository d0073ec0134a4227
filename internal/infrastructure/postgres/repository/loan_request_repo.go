package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultLoanRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultLoanRequestRepository(db *gorm.DB) *DefaultLoanRequestRepository {
	return &DefaultLoanRequestRepository{DB: db}
}

func (r *DefaultLoanRequestRepository) GetLoanRequestByID(ctx context.Context, id string) (*domain.LoanRequest, error) {
	var model models.LoanRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrLoanRequestNotFound)
	}
	return mappers.ToDomainLoanRequest(&model), nil
}

func (r *DefaultLoanRequestRepository) GetLoanRequestByTransactionID(ctx context.Context, transactionID string) (*domain.LoanRequest, error) {
	var model models.LoanRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, translate(err, domain.ErrLoanRequestNotFound)
	}
	return mappers.ToDomainLoanRequest(&model), nil
}

func (r *DefaultLoanRequestRepository) SaveIdentity(ctx context.Context, transactionID, iin, phone string) (*domain.LoanRequest, bool, error) {
	var (
		out     *domain.LoanRequest
		created bool
	)
	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		fresh := models.LoanRequestModel{
			ID:            uuid.NewString(),
			TransactionID: transactionID,
			Status:        domain.LoanRequestStatusPending,
			IIN:           iin,
			MobilePhone:   phone,
		}
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).Create(&fresh)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			out, created = mappers.ToDomainLoanRequest(&fresh), true
			return nil
		}

		var model models.LoanRequestModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "transaction_id = ?", transactionID).Error; err != nil {
			return translate(err, domain.ErrLoanRequestNotFound)
		}
		current := mappers.ToDomainLoanRequest(&model)
		if current.IIN == iin && current.MobilePhone == phone {
			out = current
			return nil
		}
		if !current.IdentityEditable() {
			return domain.ErrIdentityLocked
		}

		now := time.Now()
		if err := db.Model(&models.LoanRequestModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]any{"iin": iin, "mobile_phone": phone, "updated_at": now}).Error; err != nil {
			return err
		}
		current.IIN, current.MobilePhone, current.UpdatedAt = iin, phone, now
		out = current
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func (r *DefaultLoanRequestRepository) UpdateLoanRequest(ctx context.Context, req *domain.LoanRequest) error {
	model := mappers.ToGORMLoanRequest(req)
	model.UpdatedAt = time.Now()
	res := r.DB.WithContext(ctx).
		Model(&models.LoanRequestModel{}).
		Where("id = ?", req.ID).
		Select("status", "external_reference_id", "selected_offer_id", "redirect_url", "raw_payload", "updated_at").
		Updates(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLoanRequestNotFound
	}
	return nil
}

func (r *DefaultLoanRequestRepository) ListOffers(ctx context.Context, loanRequestID string) ([]*domain.LoanOffer, error) {
	var rows []models.LoanOfferModel
	if err := r.DB.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("period").Order("amount").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.LoanOffer, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.ToDomainLoanOffer(&rows[i]))
	}
	return out, nil
}

func (r *DefaultLoanRequestRepository) CreateOffersIfAbsent(ctx context.Context, loanRequestID string, offers []domain.LoanOffer) (bool, error) {
	if len(offers) == 0 {
		return false, nil
	}
	if err := domain.ValidateOffers(offers); err != nil {
		return false, err
	}
	inserted := false
	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var owner models.LoanRequestModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, "id = ?", loanRequestID).Error; err != nil {
			return translate(err, domain.ErrLoanRequestNotFound)
		}

		var count int64
		if err := db.Model(&models.LoanOfferModel{}).Where("loan_request_id = ?", loanRequestID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		rows := make([]*models.LoanOfferModel, 0, len(offers))
		for i := range offers {
			row := mappers.ToGORMLoanOffer(&offers[i])
			row.ID = uuid.NewString()
			row.LoanRequestID = loanRequestID
			row.Suitable = false
			rows = append(rows, row)
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *DefaultLoanRequestRepository) SelectOffer(ctx context.Context, loanRequestID, offerID string, confirm func(offer *domain.LoanOffer) error) (*domain.LoanOffer, error) {
	var selected *domain.LoanOffer
	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var owner models.LoanRequestModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, "id = ?", loanRequestID).Error; err != nil {
			return translate(err, domain.ErrLoanRequestNotFound)
		}
		if owner.Status.IsFinal() {
			return domain.ErrLoanDecided
		}

		var offer models.LoanOfferModel
		if err := db.First(&offer, "id = ? AND loan_request_id = ?", offerID, loanRequestID).Error; err != nil {
			return translate(err, domain.ErrLoanOfferNotFound)
		}
		selected = mappers.ToDomainLoanOffer(&offer)

		if offer.Suitable && owner.SelectedOfferID != nil && *owner.SelectedOfferID == offerID {
			return nil
		}

		if err := confirm(selected); err != nil {
			return err
		}

		if err := db.Model(&models.LoanOfferModel{}).
			Where("loan_request_id = ? AND id <> ?", loanRequestID, offerID).
			Update("suitable", false).Error; err != nil {
			return err
		}
		if err := db.Model(&models.LoanOfferModel{}).
			Where("id = ?", offerID).
			Update("suitable", true).Error; err != nil {
			return err
		}
		selected.Suitable = true

		return db.Model(&models.LoanRequestModel{}).
			Where("id = ?", loanRequestID).
			Updates(map[string]any{
				"selected_offer_id": offerID,
				"status":            domain.LoanRequestStatusOfferSelected,
				"updated_at":        time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}
