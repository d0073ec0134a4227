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

type DefaultConfirmationRepository struct {
	DB *gorm.DB
}

func NewDefaultConfirmationRepository(db *gorm.DB) *DefaultConfirmationRepository {
	return &DefaultConfirmationRepository{DB: db}
}

func (r *DefaultConfirmationRepository) IssueConfirmation(ctx context.Context, c *domain.OrderConfirmation, maxTrials int) (*domain.OrderConfirmation, error) {
	var out *domain.OrderConfirmation
	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		seed := models.OrderConfirmationModel{
			ID:         uuid.NewString(),
			OrderID:    c.OrderID,
			MerchantID: c.MerchantID,
			CustomerID: c.CustomerID,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		// the trial counter check must see the latest committed value
		var model models.OrderConfirmationModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, "order_id = ?", c.OrderID).Error; err != nil {
			return err
		}
		if model.Trials >= maxTrials {
			return domain.ErrConfirmationExceeded
		}

		model.Trials++
		model.Code = c.Code
		model.MerchantID = c.MerchantID
		model.CustomerID = c.CustomerID
		model.UpdatedAt = time.Now()
		if err := db.Model(&models.OrderConfirmationModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]any{
				"trials":      model.Trials,
				"code":        model.Code,
				"merchant_id": model.MerchantID,
				"customer_id": model.CustomerID,
				"updated_at":  model.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		out = mappers.ToDomainConfirmation(&model)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
