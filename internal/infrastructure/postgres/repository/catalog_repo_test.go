package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/pgtest"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	db := pgtest.NewDB(t)
	repo := repository.NewDefaultCatalogRepository(db)

	merchantID, airlinkID := uuid.NewString(), uuid.NewString()
	activeID, inactiveID := uuid.NewString(), uuid.NewString()
	pgtest.Seed(t, db,
		&models.MerchantModel{ID: merchantID, LegalName: "TOO Shop", BIN: "123456789012"},
		&models.PaymentMethodModel{ID: activeID, MerchantID: merchantID, BaseType: domain.BaseMethodCard, IsActive: true},
		&models.PaymentMethodModel{ID: inactiveID, MerchantID: merchantID, BaseType: domain.BaseMethodLoan, IsActive: true},
		&models.AirlinkModel{ID: airlinkID, MerchantID: merchantID, Name: "Sneakers", IsPublished: true},
		&models.AirlinkItemModel{ID: uuid.NewString(), AirlinkID: airlinkID, VariantID: "v-1", Price: decimal.NewFromInt(1000), Quantity: 2},
	)
	require.NoError(t, db.Model(&models.PaymentMethodModel{}).Where("id = ?", inactiveID).Update("is_active", false).Error)

	airlink, err := repo.GetAirlinkByID(ctx, airlinkID)
	require.NoError(t, err)
	require.Len(t, airlink.Items, 1)
	assert.True(t, airlink.TotalPrice().Equal(decimal.NewFromInt(2000)))

	merchant, err := repo.GetMerchantByID(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, []string{activeID}, merchant.ActivePaymentMethodIDs)

	method, err := repo.GetPaymentMethodByID(ctx, activeID)
	require.NoError(t, err)
	assert.Equal(t, domain.BaseMethodCard, method.BaseType)

	_, err = repo.GetAirlinkByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAirlinkNotFound)
}
