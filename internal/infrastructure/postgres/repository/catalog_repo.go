package repository

import (
	"context"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultCatalogRepository reads airlinks, merchants and payment methods.
type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) GetAirlinkByID(ctx context.Context, id string) (*domain.Airlink, error) {
	var model models.AirlinkModel
	if err := r.DB.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrAirlinkNotFound)
	}
	return mappers.ToDomainAirlink(&model), nil
}

func (r *DefaultCatalogRepository) GetMerchantByID(ctx context.Context, id string) (*domain.Merchant, error) {
	var model models.MerchantModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrMerchantNotFound)
	}

	var methodIDs []string
	if err := r.DB.WithContext(ctx).
		Model(&models.PaymentMethodModel{}).
		Where("merchant_id = ? AND is_active = ?", id, true).
		Pluck("id", &methodIDs).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainMerchant(&model, methodIDs), nil
}

func (r *DefaultCatalogRepository) GetPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	var model models.PaymentMethodModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrPaymentMethodNotFound)
	}
	return mappers.ToDomainPaymentMethod(&model), nil
}
