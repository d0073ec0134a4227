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

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, bool, error) {
	model := mappers.ToGORMTransaction(tx)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if model.Status == "" {
		model.Status = domain.TransactionStatusNew
	}
	if model.Currency == "" {
		model.Currency = domain.DefaultCurrency
	}

	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_order_id"}},
			DoNothing: true,
		}).
		Create(model)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetTransactionByExternalOrderID(ctx, tx.ExternalOrderID)
		return existing, false, err
	}

	return mappers.ToDomainTransaction(model), true, nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrTransactionNotFound)
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) GetTransactionByExternalOrderID(ctx context.Context, orderID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "external_order_id = ?", orderID).Error; err != nil {
		return nil, translate(err, domain.ErrTransactionNotFound)
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) GetTransactionByHoldReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "hold_reference = ?", reference).Error; err != nil {
		return nil, translate(err, domain.ErrTransactionNotFound)
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) UpdateTransactionStatus(ctx context.Context, id string, status domain.TransactionStatus) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ? AND status IN ?", id, domain.SourceStatuses(status)).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultTransactionRepository) ApplyHoldStatus(ctx context.Context, reference string, status domain.TransactionStatus, receipt string) (bool, error) {
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if receipt != "" {
		updates["hold_receipt_number"] = receipt
	}

	res := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("hold_reference = ? AND status IN ?", reference, domain.SourceStatuses(status)).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultTransactionRepository) SwitchPaymentMethod(ctx context.Context, id, methodID string, purge *domain.BaseMethodType) error {
	return r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var model models.TransactionModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, "id = ?", id).Error; err != nil {
			return translate(err, domain.ErrTransactionNotFound)
		}
		if model.Status.IsTerminal() {
			return domain.ErrTransactionFinished
		}

		if purge != nil {
			switch *purge {
			case domain.BaseMethodCard:
				if err := db.Where("transaction_id = ?", id).Delete(&models.CardRequestModel{}).Error; err != nil {
					return err
				}
			case domain.BaseMethodLoan:
				loanRequests := db.Model(&models.LoanRequestModel{}).Select("id").Where("transaction_id = ?", id)
				if err := db.Where("loan_request_id IN (?)", loanRequests).Delete(&models.LoanOfferModel{}).Error; err != nil {
					return err
				}
				if err := db.Where("transaction_id = ?", id).Delete(&models.LoanRequestModel{}).Error; err != nil {
					return err
				}
			}
		}

		return db.Model(&models.TransactionModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"payment_method_id": methodID,
				"updated_at":        time.Now(),
			}).Error
	})
}

func (r *DefaultTransactionRepository) SyncCompleted(ctx context.Context, id string, push func(tx *domain.Transaction) error) (bool, error) {
	pushed := false
	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var model models.TransactionModel
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, "id = ?", id).Error; err != nil {
			return translate(err, domain.ErrTransactionNotFound)
		}
		if model.Status != domain.TransactionStatusCompleted || model.Synced {
			return nil
		}

		if err := push(mappers.ToDomainTransaction(&model)); err != nil {
			return err
		}

		res := db.Model(&models.TransactionModel{}).
			Where("id = ? AND status = ? AND synced = ?", id, domain.TransactionStatusCompleted, false).
			Updates(map[string]any{
				"synced":     true,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		pushed = res.RowsAffected > 0
		return nil
	})
	return pushed, err
}

func (r *DefaultTransactionRepository) FindExpiredHolds(ctx context.Context, createdBefore time.Time) ([]*domain.Transaction, error) {
	var rows []models.TransactionModel
	err := r.DB.WithContext(ctx).
		Where("status IN ?", []domain.TransactionStatus{domain.TransactionStatusNew, domain.TransactionStatusInProgress}).
		Where("created_at <= ?", createdBefore).
		Where("hold_reference IS NOT NULL AND hold_reference <> ''").
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.ToDomainTransaction(&rows[i]))
	}
	return out, nil
}
