package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/domain"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/cache"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/commerce"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/freedompay"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/mfo"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/p2p"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/postgres/repository"
)

type Dependencies struct {
	Config        *config.FulfillmentConfig
	DB            *gorm.DB
	Redis         *redis.Client
	TaskPublisher *kafka.TaskPublisher
	Registry      *prometheus.Registry
	Metrics       *metrics.FulfillmentMetrics
	Repositories  *Repositories
	Gateways      *Gateways
}

type Repositories struct {
	Transactions  domain.TransactionRepository
	CardRequests  domain.CardRequestRepository
	LoanRequests  domain.LoanRequestRepository
	Catalog       domain.CatalogRepository
	Confirmations domain.ConfirmationRepository
}

type Gateways struct {
	Commerce domain.CommerceGateway
	Card     domain.CardGateway
	Loan     domain.LoanGateway
	Hold     domain.HoldGateway
	Notifier domain.Notifier
}

func InitializeDependencies(ctx context.Context, cfg *config.FulfillmentConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)
	if cfg.FulfillmentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.FulfillmentDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := cache.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewFulfillmentMetrics(registry)

	gateways, err := initGateways(cfg, m)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Transactions:  repository.NewDefaultTransactionRepository(db),
		CardRequests:  repository.NewDefaultCardRequestRepository(db),
		LoanRequests:  repository.NewDefaultLoanRequestRepository(db),
		Catalog:       repository.NewDefaultCatalogRepository(db),
		Confirmations: repository.NewDefaultConfirmationRepository(db),
	}

	return &Dependencies{
		Config:        cfg,
		DB:            db,
		Redis:         redisClient,
		TaskPublisher: kafka.NewTaskPublisher(cfg.Kafka.Brokers, cfg.Kafka.TasksTopic),
		Registry:      registry,
		Metrics:       m,
		Repositories:  repos,
		Gateways:      gateways,
	}, nil
}

func initGateways(cfg *config.FulfillmentConfig, m *metrics.FulfillmentMetrics) (*Gateways, error) {
	secrets, err := freedompay.LoadSecretDecrypter(cfg.CardGateway.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("card gateway private key: %w", err)
	}
	card, err := freedompay.NewClient(cfg.CardGateway, secrets, m)
	if err != nil {
		return nil, fmt.Errorf("card gateway: %w", err)
	}

	if !cfg.HoldGateway.Enabled {
		slog.Info("hold gateway disabled, orders are created without a hold")
	}

	return &Gateways{
		Commerce: commerce.NewClient(cfg.Commerce, m),
		Card:     card,
		Loan:     mfo.NewClient(cfg.LoanGateway, m),
		Hold:     p2p.NewClient(cfg.HoldGateway, m),
		Notifier: notifier.NewHTTPNotifier(cfg.Notifier, m),
	}, nil
}

// Close releases the connections opened by InitializeDependencies.
func (d *Dependencies) Close() {
	if err := d.TaskPublisher.Close(); err != nil {
		slog.Error("failed to close task publisher", "error", err)
	}
	if err := d.Redis.Close(); err != nil {
		slog.Error("failed to close redis", "error", err)
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}
