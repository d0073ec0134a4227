package setup

import (
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/cache"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/card"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/completion"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/confirmation"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/expiry"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/idempotency"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/loan"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/order"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/payment"
	"github.com/LavaJover/shvark-fulfillment-service/internal/usecase/settlement"
)

type UseCases struct {
	OrderUsecase        order.OrderUsecase
	PaymentUsecase      payment.PaymentUsecase
	CardUsecase         card.CardUsecase
	LoanUsecase         loan.LoanUsecase
	CompletionUsecase   completion.CompletionUsecase
	SettlementUsecase   settlement.SettlementUsecase
	ConfirmationUsecase confirmation.ConfirmationUsecase
	Reaper              *expiry.Reaper
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	cfg := deps.Config
	repos := deps.Repositories
	gw := deps.Gateways
	tasks := deps.TaskPublisher

	guard := idempotency.NewGuard(
		cache.NewRedisCache(deps.Redis),
		cache.NewRedisLocker(deps.Redis),
		idempotency.Options{
			CachePrefix:     cfg.Idempotency.CachePrefix,
			CacheTTL:        cfg.Idempotency.CacheTTL,
			LockTimeout:     cfg.OrderLockTimeout(),
			BlockingTimeout: cfg.Idempotency.BlockingTimeout,
			RetryDelay:      cfg.Idempotency.RetryDelay,
		},
		deps.Metrics,
	)

	settlementUsecase := settlement.NewDefaultSettlementUsecase(repos.Transactions, gw.Hold, tasks, deps.Metrics)
	var holds order.HoldInitializer
	if cfg.HoldGateway.Enabled {
		holds = settlementUsecase
	}

	return &UseCases{
		OrderUsecase: order.NewDefaultOrderUsecase(
			repos.Catalog,
			repos.Transactions,
			gw.Commerce,
			holds,
			guard,
			order.Options{ChannelID: cfg.Commerce.ChannelID},
			deps.Metrics,
		),
		PaymentUsecase: payment.NewDefaultPaymentUsecase(
			repos.Transactions,
			repos.CardRequests,
			repos.LoanRequests,
			repos.Catalog,
			tasks,
			deps.Metrics,
		),
		CardUsecase: card.NewDefaultCardUsecase(
			repos.Transactions,
			repos.CardRequests,
			repos.Catalog,
			gw.Card,
			tasks,
			card.Options{BaseHost: cfg.BaseHost},
			deps.Metrics,
		),
		LoanUsecase: loan.NewDefaultLoanUsecase(
			repos.Transactions,
			repos.LoanRequests,
			repos.Catalog,
			gw.Loan,
			tasks,
			loan.Options{BaseHost: cfg.BaseHost},
			deps.Metrics,
		),
		CompletionUsecase:   completion.NewDefaultCompletionUsecase(repos.Transactions, repos.Catalog, gw.Commerce, deps.Metrics),
		SettlementUsecase:   settlementUsecase,
		ConfirmationUsecase: confirmation.NewDefaultConfirmationUsecase(gw.Commerce, repos.Confirmations, gw.Notifier, cfg.Confirmation.MaxRequests),
		Reaper:              expiry.NewReaper(repos.Transactions, cfg.Expiry.MaxAge, deps.Metrics),
	}
}
