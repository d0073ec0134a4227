package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FulfillmentConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.FulfillmentDB.Dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err)
	}
	sqlDB.SetMaxOpenConns(cfg.FulfillmentDB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.FulfillmentDB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.FulfillmentDB.ConnMaxLife)

	return db
}

// AutoMigrate creates the ledger and catalog tables from the gorm models.
// Deployments use the SQL migrations; this is for local runs and tests.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.TransactionModel{},
		&models.CardRequestModel{},
		&models.LoanRequestModel{},
		&models.LoanOfferModel{},
		&models.MerchantModel{},
		&models.PaymentMethodModel{},
		&models.AirlinkModel{},
		&models.AirlinkItemModel{},
		&models.OrderConfirmationModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
