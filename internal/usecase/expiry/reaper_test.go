package expiry_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/pgtest"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/expiry"
)

func seedTx(status domain.TransactionStatus, age time.Duration, hold bool) *models.TransactionModel {
	m := &models.TransactionModel{
		ID:              uuid.NewString(),
		Status:          status,
		ExternalOrderID: uuid.NewString(),
		Amount:          decimal.NewFromInt(100),
		Currency:        domain.DefaultCurrency,
		CreatedAt:       time.Now().UTC().Add(-age),
	}
	if hold {
		ref := "hold-" + m.ID
		m.HoldReference = &ref
	}
	return m
}

func TestSweep_CancelsOnlyStaleUnpaidHolds(t *testing.T) {
	ctx := context.Background()
	db := pgtest.NewDB(t)
	repo := repository.NewDefaultTransactionRepository(db)

	fresh := seedTx(domain.TransactionStatusNew, 23*time.Hour, true)
	stale := seedTx(domain.TransactionStatusNew, 25*time.Hour, true)
	staleInProgress := seedTx(domain.TransactionStatusInProgress, 30*time.Hour, true)
	paid := seedTx(domain.TransactionStatusCompleted, 25*time.Hour, true)
	noHold := seedTx(domain.TransactionStatusNew, 25*time.Hour, false)
	pgtest.Seed(t, db, fresh, stale, staleInProgress, paid, noHold)

	canceled, err := expiry.NewReaper(repo, 24*time.Hour, nil).Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, canceled)

	want := map[string]domain.TransactionStatus{
		fresh.ID:           domain.TransactionStatusNew,
		stale.ID:           domain.TransactionStatusCanceled,
		staleInProgress.ID: domain.TransactionStatusCanceled,
		paid.ID:            domain.TransactionStatusCompleted,
		noHold.ID:          domain.TransactionStatusNew,
	}
	for id, status := range want {
		tx, err := repo.GetTransactionByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, tx.Status, id)
	}

	canceled, err = expiry.NewReaper(repo, 0, nil).Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, canceled)
}
