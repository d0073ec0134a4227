package card_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/pgtest"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-fulfillment-service/internal/mocks"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/card"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/completion"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/payment"
)

type fixture struct {
	db           *gorm.DB
	transactions *repository.DefaultTransactionRepository
	cardRequests *repository.DefaultCardRequestRepository
	catalog      *repository.DefaultCatalogRepository
	gateway      *mocks.MockCardGateway
	commerce     *mocks.MockCommerceGateway
	tasks        *mocks.MockTaskQueue
	card         *card.DefaultCardUsecase
	methodID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := pgtest.NewDB(t)

	merchantID, methodID := uuid.NewString(), uuid.NewString()
	pgtest.Seed(t, db,
		&models.MerchantModel{ID: merchantID, LegalName: "TOO Shop", BIN: "123456789012"},
		&models.PaymentMethodModel{
			ID:                 methodID,
			MerchantID:         merchantID,
			BaseType:           domain.BaseMethodCard,
			IsActive:           true,
			GatewayMerchantID:  "555",
			EncryptedSecretKey: "ZW5jcnlwdGVk",
		},
	)

	f := &fixture{
		db:           db,
		transactions: repository.NewDefaultTransactionRepository(db),
		cardRequests: repository.NewDefaultCardRequestRepository(db),
		catalog:      repository.NewDefaultCatalogRepository(db),
		gateway:      mocks.NewMockCardGateway(ctrl),
		commerce:     mocks.NewMockCommerceGateway(ctrl),
		tasks:        mocks.NewMockTaskQueue(ctrl),
		methodID:     methodID,
	}
	f.card = card.NewDefaultCardUsecase(f.transactions, f.cardRequests, f.catalog, f.gateway, f.tasks,
		card.Options{BaseHost: "https://fb.test/"}, nil)
	return f
}

func (f *fixture) newTransaction(t *testing.T, orderID string, status domain.TransactionStatus) *domain.Transaction {
	t.Helper()
	methodID := f.methodID
	tx, _, err := f.transactions.CreateTransaction(context.Background(), &domain.Transaction{
		ID:              uuid.NewString(),
		Status:          status,
		ExternalOrderID: orderID,
		Amount:          decimal.NewFromInt(1000),
		Currency:        domain.DefaultCurrency,
		PaymentMethodID: &methodID,
	})
	require.NoError(t, err)
	return tx
}

func (f *fixture) status(t *testing.T, id string) *domain.Transaction {
	t.Helper()
	tx, err := f.transactions.GetTransactionByID(context.Background(), id)
	require.NoError(t, err)
	return tx
}

func TestCardHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	router := payment.NewDefaultPaymentUsecase(f.transactions, f.cardRequests,
		repository.NewDefaultLoanRequestRepository(f.db), f.catalog, f.tasks, nil)
	finalizer := completion.NewDefaultCompletionUsecase(f.transactions, f.catalog, f.commerce, nil)

	tx := f.newTransaction(t, "order-1", domain.TransactionStatusNew)
	task := domain.TransactionTask{TransactionID: tx.ID}

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskCardInitiate, task).Return(nil)
	res, err := router.ProcessPayment(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusInProgress, res.Status)

	f.gateway.EXPECT().InitPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CardInitRequest) (*domain.CardInitResult, error) {
			assert.Equal(t, tx.ID, req.OrderID)
			assert.Equal(t, "555", req.MerchantID)
			assert.Equal(t, "ZW5jcnlwdGVk", req.EncryptedSecret)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(1000)))
			assert.Equal(t, "Заказ № order-1", req.Description)
			assert.True(t, strings.HasPrefix(req.ResultURL, "https://fb.test/api/v1/card-requests/"))
			assert.Equal(t, req.ResultURL, req.SuccessURL)
			assert.Equal(t, req.ResultURL, req.FailureURL)
			return &domain.CardInitResult{RedirectURL: "https://pay.test/r/1", PaymentID: "pay-1"}, nil
		})
	req, err := f.card.Initiate(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/r/1", req.RedirectURL)
	assert.Equal(t, domain.TransactionStatusActionRequired, f.status(t, tx.ID).Status)

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskCardPoll, task).Return(nil)
	res, err = router.ProcessPayment(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RequiredActionFollowRedirectLink, res.RequiredAction)
	assert.Equal(t, "https://pay.test/r/1", res.RedirectURL)

	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskCardPoll, task).Return(nil)
	full := decimal.NewFromInt(1000)
	req, err = f.card.IngestCallback(ctx, req.ID, domain.CardCallback{
		OrderID:     tx.ID,
		Reference:   "ref-1",
		CardPan:     "4400-43XX-XXXX-1234",
		PaymentDate: "2026-01-10 12:00:00",
		Result:      1,
		FullAmount:  &full,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CardRequestStatusSuccess, req.Status)
	assert.Equal(t, domain.TransactionStatusActionRequired, f.status(t, tx.ID).Status, "callback alone does not settle the transaction")

	f.gateway.EXPECT().PaymentStatus(gomock.Any(), domain.CardStatusRequest{
		OrderID:         tx.ID,
		MerchantID:      "555",
		PaymentID:       "pay-1",
		EncryptedSecret: "ZW5jcnlwdGVk",
	}).Return(&domain.CardStatusResult{PaymentStatus: "success"}, nil)
	f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskFinalizeTransaction, task).Return(nil)
	status, err := f.card.PollStatus(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, status)

	f.commerce.EXPECT().PushCompletion(gomock.Any(), domain.CompletionInput{
		OrderID:  "order-1",
		Amount:   f.status(t, tx.ID).Amount,
		Currency: domain.DefaultCurrency,
		Note:     "Transaction id " + tx.ID + ", payment method CARD",
	}).Return(nil).Times(1)
	pushed, err := finalizer.Finalize(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, pushed)

	pushed, err = finalizer.Finalize(ctx, tx.ID)
	require.NoError(t, err)
	assert.False(t, pushed)

	final := f.status(t, tx.ID)
	assert.Equal(t, domain.TransactionStatusCompleted, final.Status)
	assert.True(t, final.Synced)
}

func TestInitiate_ReentryDoesNotCallGatewayAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.newTransaction(t, "order-2", domain.TransactionStatusInProgress)

	f.gateway.EXPECT().InitPayment(gomock.Any(), gomock.Any()).
		Return(&domain.CardInitResult{RedirectURL: "https://pay.test/r/2", PaymentID: "pay-2"}, nil).Times(1)

	first, err := f.card.Initiate(ctx, tx.ID)
	require.NoError(t, err)
	second, err := f.card.Initiate(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "https://pay.test/r/2", second.RedirectURL)
}

func TestInitiate_GatewayFailureKeepsTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.newTransaction(t, "order-3", domain.TransactionStatusInProgress)

	f.gateway.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return(nil, domain.ErrGateway)

	_, err := f.card.Initiate(ctx, tx.ID)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Equal(t, domain.TransactionStatusInProgress, f.status(t, tx.ID).Status)
}

func TestIngestCallback_ResultCodes(t *testing.T) {
	tests := []struct {
		name   string
		result int
		want   domain.CardRequestStatus
	}{
		{name: "failed", result: 0, want: domain.CardRequestStatusFailed},
		{name: "success", result: 1, want: domain.CardRequestStatusSuccess},
		{name: "interrupted", result: 7, want: domain.CardRequestStatusInterrupted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			tx := f.newTransaction(t, "order-"+tt.name, domain.TransactionStatusActionRequired)
			req, _, err := f.cardRequests.GetOrCreateCardRequest(ctx, tx.ID)
			require.NoError(t, err)

			f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskCardPoll, gomock.Any()).Return(nil).Times(2)
			cb := domain.CardCallback{OrderID: tx.ID, Reference: "ref", Result: tt.result}

			got, err := f.card.IngestCallback(ctx, req.ID, cb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)

			// a replayed callback leaves the same state
			got, err = f.card.IngestCallback(ctx, req.ID, cb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			require.NotNil(t, got.ResultCode)
			assert.Equal(t, tt.result, *got.ResultCode)
			assert.Equal(t, domain.TransactionStatusActionRequired, f.status(t, tx.ID).Status)
		})
	}
}

func TestIngestCallback_Rejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.newTransaction(t, "order-4", domain.TransactionStatusActionRequired)
	req, _, err := f.cardRequests.GetOrCreateCardRequest(ctx, tx.ID)
	require.NoError(t, err)
	req.GatewayOrderID = tx.ID
	require.NoError(t, f.cardRequests.UpdateCardRequest(ctx, req))

	_, err = f.card.IngestCallback(ctx, req.ID, domain.CardCallback{Result: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidCallback)

	_, err = f.card.IngestCallback(ctx, req.ID, domain.CardCallback{OrderID: "someone-else", Result: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidCallback)

	_, err = f.card.IngestCallback(ctx, uuid.NewString(), domain.CardCallback{OrderID: tx.ID, Result: 1})
	assert.ErrorIs(t, err, domain.ErrCardRequestNotFound)
}

func TestPollStatus(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		wantStatus domain.TransactionStatus
		finalize   bool
	}{
		{name: "success", provider: "success", wantStatus: domain.TransactionStatusCompleted, finalize: true},
		{name: "error", provider: "error", wantStatus: domain.TransactionStatusFailed},
		{name: "processing", provider: "processing", wantStatus: domain.TransactionStatusActionRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			tx := f.newTransaction(t, "order-"+tt.name, domain.TransactionStatusActionRequired)
			req, _, err := f.cardRequests.GetOrCreateCardRequest(ctx, tx.ID)
			require.NoError(t, err)
			req.GatewayPaymentID = "pay-" + tt.name
			require.NoError(t, f.cardRequests.UpdateCardRequest(ctx, req))

			f.gateway.EXPECT().PaymentStatus(gomock.Any(), gomock.Any()).
				Return(&domain.CardStatusResult{PaymentStatus: tt.provider}, nil)
			if tt.finalize {
				f.tasks.EXPECT().Submit(gomock.Any(), domain.TaskFinalizeTransaction, domain.TransactionTask{TransactionID: tx.ID}).Return(nil)
			}

			got, err := f.card.PollStatus(ctx, tx.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got)
			assert.Equal(t, tt.wantStatus, f.status(t, tx.ID).Status)
		})
	}
}

func TestPollStatus_FinishedTransactionIsNotPolled(t *testing.T) {
	f := newFixture(t)
	tx := f.newTransaction(t, "order-5", domain.TransactionStatusCanceled)

	got, err := f.card.PollStatus(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCanceled, got)
}
