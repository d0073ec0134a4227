package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FulfillmentMetrics holds the collectors of the payment and loan flows.
type FulfillmentMetrics struct {
	TransactionsCreatedTotal *prometheus.CounterVec
	TransactionsAmountTotal  *prometheus.CounterVec
	TransitionsTotal         *prometheus.CounterVec
	CompletionsSyncedTotal   *prometheus.CounterVec

	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	IdempotencyResultsTotal *prometheus.CounterVec

	TasksProcessedTotal *prometheus.CounterVec
	TaskDuration        *prometheus.HistogramVec

	ExpiredCanceledTotal prometheus.Counter
	WebhooksTotal        *prometheus.CounterVec
}

// NewFulfillmentMetrics registers every collector on reg. A nil reg means the default registry.
func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &FulfillmentMetrics{
		TransactionsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_transactions_created_total",
				Help: "Transactions written by order creation",
			},
			[]string{"merchant_id", "currency"},
		),
		TransactionsAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_transactions_amount_total",
				Help: "Sum of created transaction amounts",
			},
			[]string{"currency"},
		),
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_transaction_transitions_total",
				Help: "Applied transaction status transitions",
			},
			[]string{"rail", "status"},
		),
		CompletionsSyncedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_completions_synced_total",
				Help: "Completions pushed to the commerce system",
			},
			[]string{"rail"},
		),
		GatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_gateway_requests_total",
				Help: "Outgoing gateway calls by outcome",
			},
			[]string{"gateway", "operation", "outcome"},
		),
		GatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fulfillment_gateway_request_duration_seconds",
				Help:    "Latency of outgoing gateway calls",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"gateway", "operation"},
		),
		IdempotencyResultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_idempotency_results_total",
				Help: "Idempotency guard outcomes: hit, miss, busy, error",
			},
			[]string{"outcome"},
		),
		TasksProcessedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_tasks_processed_total",
				Help: "Background tasks handled by the worker",
			},
			[]string{"task", "outcome"},
		),
		TaskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fulfillment_task_duration_seconds",
				Help:    "Background task handling time",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"task"},
		),
		ExpiredCanceledTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fulfillment_expired_transactions_canceled_total",
				Help: "Hold transactions canceled by the expiry sweep",
			},
		),
		WebhooksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_webhooks_total",
				Help: "Incoming gateway webhooks by outcome",
			},
			[]string{"source", "outcome"},
		),
	}
}

func (m *FulfillmentMetrics) RecordTransactionCreated(merchantID, currency string, amount float64) {
	if m == nil {
		return
	}
	m.TransactionsCreatedTotal.WithLabelValues(merchantID, currency).Inc()
	m.TransactionsAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *FulfillmentMetrics) RecordTransition(rail, status string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(rail, status).Inc()
}

func (m *FulfillmentMetrics) RecordCompletionSynced(rail string) {
	if m == nil {
		return
	}
	m.CompletionsSyncedTotal.WithLabelValues(rail).Inc()
}

func (m *FulfillmentMetrics) RecordGatewayCall(gateway, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.GatewayRequestsTotal.WithLabelValues(gateway, operation, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(gateway, operation).Observe(time.Since(started).Seconds())
}

func (m *FulfillmentMetrics) RecordIdempotency(outcome string) {
	if m == nil {
		return
	}
	m.IdempotencyResultsTotal.WithLabelValues(outcome).Inc()
}

func (m *FulfillmentMetrics) RecordTask(task, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.TasksProcessedTotal.WithLabelValues(task, outcome).Inc()
	m.TaskDuration.WithLabelValues(task).Observe(time.Since(started).Seconds())
}

func (m *FulfillmentMetrics) RecordExpiredCanceled(n int) {
	if m == nil || n == 0 {
		return
	}
	m.ExpiredCanceledTotal.Add(float64(n))
}

func (m *FulfillmentMetrics) RecordWebhook(source, outcome string) {
	if m == nil {
		return
	}
	m.WebhooksTotal.WithLabelValues(source, outcome).Inc()
}
