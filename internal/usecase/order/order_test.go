package order_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/cache"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/pgtest"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-fulfillment-service/internal/mocks"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/idempotency"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/order"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

type fixture struct {
	db           *gorm.DB
	transactions *repository.DefaultTransactionRepository
	commerce     *mocks.MockCommerceGateway
	holds        *mocks.MockHoldGateway
	uc           *order.DefaultOrderUsecase
	merchantID   string
	methodID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := pgtest.NewDB(t)

	srv := miniredis.RunT(t)
	client, err := cache.Connect(context.Background(), srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	guard := idempotency.NewGuard(cache.NewRedisCache(client), cache.NewRedisLocker(client), idempotency.Options{
		CachePrefix:     "order:result:",
		CacheTTL:        30 * time.Second,
		LockTimeout:     10 * time.Second,
		BlockingTimeout: 5 * time.Second,
		RetryDelay:      5 * time.Millisecond,
	}, nil)

	f := &fixture{
		db:           db,
		transactions: repository.NewDefaultTransactionRepository(db),
		commerce:     mocks.NewMockCommerceGateway(ctrl),
		holds:        mocks.NewMockHoldGateway(ctrl),
		merchantID:   uuid.NewString(),
		methodID:     uuid.NewString(),
	}
	pgtest.Seed(t, db,
		&models.MerchantModel{ID: f.merchantID, LegalName: "TOO Shop", BIN: "123456789012"},
		&models.PaymentMethodModel{ID: f.methodID, MerchantID: f.merchantID, BaseType: domain.BaseMethodCard, IsActive: true},
	)

	holds := settlement.NewDefaultSettlementUsecase(f.transactions, f.holds, nil, nil)
	f.uc = order.NewDefaultOrderUsecase(repository.NewDefaultCatalogRepository(db), f.transactions, f.commerce,
		holds, guard, order.Options{ChannelID: "default-channel"}, nil)
	return f
}

type airlinkOpt func(*models.AirlinkModel)

func (f *fixture) airlink(t *testing.T, items int, opts ...airlinkOpt) string {
	t.Helper()
	id := uuid.NewString()
	model := &models.AirlinkModel{ID: id, MerchantID: f.merchantID, Name: "Sneakers", IsPublished: true,
		PublicURL: "https://shop.test/a/" + id, ImageURL: "https://shop.test/img.png"}
	for _, opt := range opts {
		opt(model)
	}
	pgtest.Seed(t, f.db, model)
	for i := 0; i < items; i++ {
		pgtest.Seed(t, f.db, &models.AirlinkItemModel{
			ID: uuid.NewString(), AirlinkID: id, VariantID: "v-1", Price: decimal.NewFromInt(2500), Quantity: 2,
		})
	}
	return id
}

func buyer() domain.Buyer {
	return domain.Buyer{CustomerID: "cust-1", Phone: "+77010000000", Email: "buyer@example.com"}
}

func (f *fixture) expectCommerce(t *testing.T, airlinkID, orderID string) {
	t.Helper()
	f.commerce.EXPECT().ResolveChannel(gomock.Any(), "default-channel").Return("kz", nil)
	f.commerce.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.CheckoutInput) (string, error) {
			assert.Equal(t, "v-1", in.VariantID)
			assert.Equal(t, 2, in.Quantity)
			assert.Equal(t, "cust-1", in.CustomerID)
			assert.Equal(t, airlinkID, in.AirlinkID)
			assert.Equal(t, "kz", in.ChannelSlug)
			return "checkout-1", nil
		})
	f.commerce.EXPECT().CreateOrder(gomock.Any(), "checkout-1", f.merchantID).Return(orderID, nil)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	airlinkID := f.airlink(t, 1)

	f.expectCommerce(t, airlinkID, "order-1")
	f.holds.EXPECT().InitHold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.HoldInit) (string, error) {
			assert.True(t, in.Amount.Equal(decimal.NewFromInt(5000)))
			assert.Equal(t, "+77010000000", in.PayerPhone)
			require.Len(t, in.Links, 1)
			assert.Equal(t, "Sneakers", in.Links[0].OrderName)
			return "hold-1", nil
		})

	out, err := f.uc.CreateOrder(ctx, order.CreateOrderInput{AirlinkID: airlinkID, PaymentMethodID: f.methodID, Buyer: buyer()})
	require.NoError(t, err)
	assert.Equal(t, "order-1", out.OrderID)

	tx, err := f.transactions.GetTransactionByExternalOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, out.TransactionID, tx.ID)
	assert.Equal(t, domain.TransactionStatusNew, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, domain.DefaultCurrency, tx.Currency)
	assert.Equal(t, f.merchantID, tx.MerchantID)
	assert.Equal(t, f.methodID, tx.MethodID())
	require.True(t, tx.HasHold())
	assert.Equal(t, "hold-1", *tx.HoldReference)
}

func TestCreateOrder_HoldFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	airlinkID := f.airlink(t, 1)

	f.expectCommerce(t, airlinkID, "order-2")
	f.holds.EXPECT().InitHold(gomock.Any(), gomock.Any()).Return("", domain.ErrGateway)

	out, err := f.uc.CreateOrder(ctx, order.CreateOrderInput{AirlinkID: airlinkID, Buyer: buyer()})
	require.NoError(t, err)

	tx, err := f.transactions.GetTransactionByID(ctx, out.TransactionID)
	require.NoError(t, err)
	assert.False(t, tx.HasHold())
	assert.Empty(t, tx.MethodID())
}

func TestCreateOrder_ConcurrentCallsCreateOneOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	airlinkID := f.airlink(t, 1)

	var checkouts atomic.Int32
	f.commerce.EXPECT().ResolveChannel(gomock.Any(), gomock.Any()).Return("kz", nil).Times(1)
	f.commerce.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.CheckoutInput) (string, error) {
			checkouts.Add(1)
			time.Sleep(20 * time.Millisecond)
			return "checkout-1", nil
		}).Times(1)
	f.commerce.EXPECT().CreateOrder(gomock.Any(), "checkout-1", f.merchantID).Return("order-3", nil).Times(1)
	f.holds.EXPECT().InitHold(gomock.Any(), gomock.Any()).Return("hold-3", nil).Times(1)

	const callers = 5
	results := make([]*order.CreateOrderOutput, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.CreateOrder(ctx, order.CreateOrderInput{AirlinkID: airlinkID, Buyer: buyer()})
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, int32(1), checkouts.Load())
	assert.Equal(t, "order-3", results[0].OrderID)
}

func TestCreateOrder_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)

	tests := []struct {
		name    string
		airlink func(t *testing.T) string
		method  string
		buyer   domain.Buyer
		wantErr error
	}{
		{
			name:    "unknown airlink",
			airlink: func(*testing.T) string { return uuid.NewString() },
			wantErr: domain.ErrAirlinkNotFound,
		},
		{
			name: "not published",
			airlink: func(t *testing.T) string {
				return f.airlink(t, 1, func(m *models.AirlinkModel) { m.IsPublished = false })
			},
			wantErr: domain.ErrAirlinkNotPublished,
		},
		{
			name: "not started",
			airlink: func(t *testing.T) string {
				return f.airlink(t, 1, func(m *models.AirlinkModel) { m.DateStart = &future })
			},
			wantErr: domain.ErrAirlinkNotStarted,
		},
		{
			name: "expired before empty",
			airlink: func(t *testing.T) string {
				return f.airlink(t, 0, func(m *models.AirlinkModel) { m.DateEnd = &past })
			},
			wantErr: domain.ErrAirlinkExpired,
		},
		{
			name:    "no items",
			airlink: func(t *testing.T) string { return f.airlink(t, 0) },
			wantErr: domain.ErrAirlinkEmpty,
		},
		{
			name:    "several items",
			airlink: func(t *testing.T) string { return f.airlink(t, 2) },
			wantErr: domain.ErrAirlinkMultiItem,
		},
		{
			name:    "foreign payment method",
			airlink: func(t *testing.T) string { return f.airlink(t, 1) },
			method:  uuid.NewString(),
			wantErr: domain.ErrPaymentMethodNotAllowed,
		},
		{
			name:    "buyer without phone",
			airlink: func(t *testing.T) string { return f.airlink(t, 1) },
			buyer:   domain.Buyer{CustomerID: "cust-1"},
			wantErr: domain.ErrInvalidBuyer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.buyer
			if b == (domain.Buyer{}) {
				b = buyer()
			}
			_, err := f.uc.CreateOrder(ctx, order.CreateOrderInput{AirlinkID: tt.airlink(t), PaymentMethodID: tt.method, Buyer: b})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.CreateTransaction(ctx, order.TransactionInput{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.CreateTransaction(ctx, order.TransactionInput{ExternalOrderID: "order-neg", Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	first, err := f.uc.CreateTransaction(ctx, order.TransactionInput{ExternalOrderID: "order-4", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	second, err := f.uc.CreateTransaction(ctx, order.TransactionInput{ExternalOrderID: "order-4", Amount: decimal.NewFromInt(99)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Amount.Equal(decimal.NewFromInt(10)))
}
