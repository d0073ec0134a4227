package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service key of the fulfillment orchestrator.
const ServiceName = "fulfillment.FulfillmentService"

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	server *health.Server
	db     Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	h := &HealthHandler{server: health.NewServer(), db: db}
	h.SetServing(false)
	return h
}

func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

func (h *HealthHandler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
}

// Watch flips the serving status with database reachability until ctx is done.
func (h *HealthHandler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *HealthHandler) check(ctx context.Context) {
	if h.db == nil {
		h.SetServing(true)
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(pingCtx); err != nil {
		slog.Warn("database ping failed", "error", err)
		h.SetServing(false)
		return
	}
	h.SetServing(true)
}
