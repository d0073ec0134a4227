package settlement_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/pgtest"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-fulfillment-service/internal/mocks"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

func TestHoldOutcome(t *testing.T) {
	tests := []struct {
		code   string
		want   domain.TransactionStatus
		wantOK bool
	}{
		{code: "HOLD", want: domain.TransactionStatusCompleted, wantOK: true},
		{code: "success", want: domain.TransactionStatusCompleted, wantOK: true},
		{code: "CANCELLED", want: domain.TransactionStatusCanceled, wantOK: true},
		{code: "PENDING"},
		{code: ""},
	}
	for _, tt := range tests {
		got, ok := settlement.HoldOutcome(tt.code)
		assert.Equal(t, tt.wantOK, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}
}

type fixture struct {
	transactions *repository.DefaultTransactionRepository
	gateway      *mocks.MockHoldGateway
	tasks        *mocks.MockTaskQueue
	uc           *settlement.DefaultSettlementUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db := pgtest.NewDB(t)
	f := &fixture{
		transactions: repository.NewDefaultTransactionRepository(db),
		gateway:      mocks.NewMockHoldGateway(ctrl),
		tasks:        mocks.NewMockTaskQueue(ctrl),
	}
	f.uc = settlement.NewDefaultSettlementUsecase(f.transactions, f.gateway, f.tasks, nil)
	return f
}

func (f *fixture) holdTransaction(t *testing.T, orderID, reference string) *domain.Transaction {
	t.Helper()
	tx := &domain.Transaction{
		ID:              uuid.NewString(),
		Status:          domain.TransactionStatusNew,
		ExternalOrderID: orderID,
		Amount:          decimal.NewFromInt(5000),
		Currency:        domain.DefaultCurrency,
	}
	if reference != "" {
		tx.HoldReference = &reference
	}
	stored, _, err := f.transactions.CreateTransaction(context.Background(), tx)
	require.NoError(t, err)
	return stored
}

func TestConfirmHold(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.holdTransaction(t, "order-1", "hold-1")
	finalize := domain.TransactionTask{TransactionID: tx.ID}

	applied, err := f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "PROCESSING"})
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = f.uc.ConfirmHold(ctx, "hold-unknown", settlement.Webhook{Code: "HOLD"})
	require.NoError(t, err)
	assert.False(t, applied)

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskFinalizeTransaction, finalize).Return(nil)
	applied, err = f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "HOLD", ReceiptNumber: "R-1"})
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := f.transactions.GetTransactionByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, stored.Status)
	require.NotNil(t, stored.HoldReceiptNumber)
	assert.Equal(t, "R-1", *stored.HoldReceiptNumber)

	// a completed hold is not canceled by a late webhook
	applied, err = f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "CANCELLED"})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestConfirmHold_RequeuesFinalizeUntilSynced(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.holdTransaction(t, "order-1", "hold-1")
	finalize := domain.TransactionTask{TransactionID: tx.ID}

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskFinalizeTransaction, finalize).Return(assert.AnError)
	applied, err := f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "SUCCESS"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, applied)

	// the gateway redelivers; the transition is already stored but the transaction is not synced
	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskFinalizeTransaction, finalize).Return(nil)
	applied, err = f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "SUCCESS"})
	require.NoError(t, err)
	assert.False(t, applied)

	pushed, err := f.transactions.SyncCompleted(ctx, tx.ID, func(*domain.Transaction) error { return nil })
	require.NoError(t, err)
	require.True(t, pushed)

	applied, err = f.uc.ConfirmHold(ctx, "hold-1", settlement.Webhook{Code: "SUCCESS"})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestConfirmHold_CanceledDoesNotFinalize(t *testing.T) {
	f := newFixture(t)
	f.holdTransaction(t, "order-1", "hold-1")

	applied, err := f.uc.ConfirmHold(context.Background(), "hold-1", settlement.Webhook{Code: "CANCELLED"})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRequestUnhold(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.holdTransaction(t, "order-1", "hold-1")
	f.holdTransaction(t, "order-2", "")

	assert.ErrorIs(t, f.uc.RequestUnhold(ctx, "order-2"), domain.ErrNoHold)

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskSettlementUnhold, domain.TransactionTask{TransactionID: tx.ID}).Return(nil)
	require.NoError(t, f.uc.RequestUnhold(ctx, "order-1"))
}

func TestUnhold(t *testing.T) {
	tests := []struct {
		name    string
		result  *domain.UnholdResult
		wantErr error
	}{
		{name: "released", result: &domain.UnholdResult{Status: "SUCCESS"}},
		{name: "already released", result: &domain.UnholdResult{Status: "ERROR", ErrMsg: "Платеж с референсом обработан ранее"}},
		{name: "rejected", result: &domain.UnholdResult{Status: "ERROR", ErrMsg: "insufficient rights"}, wantErr: domain.ErrUnholdRejected},
		{name: "empty answer", result: &domain.UnholdResult{}, wantErr: domain.ErrGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tx := f.holdTransaction(t, "order-1", "hold-1")
			f.gateway.EXPECT().Unhold(gomock.Any(), "hold-1").Return(tt.result, nil)

			err := f.uc.Unhold(context.Background(), tx.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInitializeHold(t *testing.T) {
	f := newFixture(t)
	airlink := &domain.Airlink{
		ID:        "a-1",
		Name:      "Sneakers",
		PublicURL: "https://shop.test/a-1",
		ImageURL:  "https://shop.test/a-1.png",
		Items:     []domain.AirlinkItem{{VariantID: "v-1", Price: decimal.NewFromInt(1500), Quantity: 2}},
	}
	merchant := &domain.Merchant{ID: "m-1", LegalName: "TOO Shop", BIN: "123456789012"}

	f.gateway.EXPECT().InitHold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.HoldInit) (string, error) {
			assert.True(t, in.Amount.Equal(decimal.NewFromInt(3000)))
			assert.Equal(t, "Sneakers", in.Description)
			assert.Equal(t, "+77010000000", in.PayerPhone)
			assert.Equal(t, "123456789012", in.Merchant.BIN)
			require.Len(t, in.Links, 1)
			assert.Equal(t, "https://shop.test/a-1", in.Links[0].OrderURL)
			return "hold-9", nil
		})

	reference, err := f.uc.InitializeHold(context.Background(), airlink, merchant, "+77010000000")
	require.NoError(t, err)
	assert.Equal(t, "hold-9", reference)
}
