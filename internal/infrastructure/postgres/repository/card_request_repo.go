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

type DefaultCardRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultCardRequestRepository(db *gorm.DB) *DefaultCardRequestRepository {
	return &DefaultCardRequestRepository{DB: db}
}

// GetOrCreateCardRequest returns the card request of a transaction, creating a PENDING one on first use.
func (r *DefaultCardRequestRepository) GetOrCreateCardRequest(ctx context.Context, transactionID string) (*domain.CardRequest, bool, error) {
	model := models.CardRequestModel{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Status:        domain.CardRequestStatusPending,
	}
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).
		Create(&model)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetCardRequestByTransactionID(ctx, transactionID)
		return existing, false, err
	}
	return mappers.ToDomainCardRequest(&model), true, nil
}

func (r *DefaultCardRequestRepository) GetCardRequestByID(ctx context.Context, id string) (*domain.CardRequest, error) {
	var model models.CardRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrCardRequestNotFound)
	}
	return mappers.ToDomainCardRequest(&model), nil
}

func (r *DefaultCardRequestRepository) GetCardRequestByTransactionID(ctx context.Context, transactionID string) (*domain.CardRequest, error) {
	var model models.CardRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, translate(err, domain.ErrCardRequestNotFound)
	}
	return mappers.ToDomainCardRequest(&model), nil
}

func (r *DefaultCardRequestRepository) UpdateCardRequest(ctx context.Context, req *domain.CardRequest) error {
	model := mappers.ToGORMCardRequest(req)
	model.UpdatedAt = time.Now()
	res := r.DB.WithContext(ctx).
		Model(&models.CardRequestModel{}).
		Where("id = ?", req.ID).
		Select("status", "redirect_url", "gateway_order_id", "gateway_payment_id", "gateway_reference",
			"card_pan", "payment_date", "result_code", "can_reject", "full_amount", "net_amount", "updated_at").
		Updates(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCardRequestNotFound
	}
	return nil
}
