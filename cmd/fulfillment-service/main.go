package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/LavaJover/shvark-fulfillment-service/internal/app/background"
	"github.com/LavaJover/shvark-fulfillment-service/internal/app/setup"
	"github.com/LavaJover/shvark-fulfillment-service/internal/app/worker"
	"github.com/LavaJover/shvark-fulfillment-service/internal/config"
	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/grpcapi"
	apihttp "github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http"
	"github.com/LavaJover/shvark-fulfillment-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-fulfillment-service/internal/infrastructure/kafka"
)

const envLocal = "local"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	slog.SetDefault(newLogger(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.InitializeDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()
	uc := setup.InitializeUseCases(deps)

	sqlDB, err := deps.DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// HTTP
	router := apihttp.New(
		handlers.NewOrderHandler(uc.OrderUsecase, uc.ConfirmationUsecase, uc.SettlementUsecase),
		handlers.NewPaymentHandler(uc.PaymentUsecase, uc.LoanUsecase),
		handlers.NewWebhookHandler(uc.CardUsecase, uc.LoanUsecase, uc.SettlementUsecase),
		deps.Registry,
		sqlDB,
	)
	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	// gRPC health
	grpcServer := grpc.NewServer()
	health := grpcapi.NewHealthHandler(sqlDB)
	health.Register(grpcServer)
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	// Task workers
	dispatcher := worker.NewDispatcher(
		uc.CardUsecase,
		uc.LoanUsecase,
		uc.CompletionUsecase,
		uc.SettlementUsecase,
		deps.TaskPublisher,
		cfg.Kafka.MaxAttempts,
		cfg.Kafka.RetryDelay,
		deps.Metrics,
	)
	workers := max(cfg.Kafka.Workers, 1)
	subscribers := make([]worker.Subscriber, 0, workers)
	for i := 0; i < workers; i++ {
		sub := kafka.NewTaskSubscriber(cfg.Kafka.Brokers, cfg.Kafka.TasksTopic, cfg.Kafka.GroupID)
		defer sub.Close()
		subscribers = append(subscribers, sub)
	}
	// delayed retries wait on their own topic and are relayed back when due
	retrySub := kafka.NewTaskSubscriber(cfg.Kafka.Brokers, kafka.RetryTopic(cfg.Kafka.TasksTopic), cfg.Kafka.GroupID+"-retry")
	defer retrySub.Close()
	relay := kafka.NewRelay(deps.TaskPublisher)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		worker.Run(ctx, dispatcher, subscribers...)
	}()
	go func() {
		defer wg.Done()
		if err := retrySub.Run(ctx, relay.Handle); err != nil {
			slog.Error("retry relay stopped", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		health.Watch(ctx, 10*time.Second)
	}()
	background.NewBackgroundTasks(uc.Reaper, cfg.Expiry.Interval).StartAll(ctx)

	errCh := make(chan error, 2)
	go func() {
		slog.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		slog.Info("grpc server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		slog.Error("server failure", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	wg.Wait()
}

func newLogger(env string) *slog.Logger {
	if env == envLocal {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
