package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_recorded_total",
		Help: "Total number of sales recorded in the ledger",
	})

	SalesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_failed_total",
		Help: "Total number of rejected sale requests",
	}, []string{"reason"})

	InventoryMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_mutations_total",
		Help: "Total number of inventory mutations",
	}, []string{"action"})

	InventoryMutationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_mutations_failed_total",
		Help: "Total number of failed inventory mutations",
	}, []string{"reason"})

	LowStockAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "low_stock_alerts_total",
		Help: "Total number of low stock alerts raised",
	})

	DealerOverdueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealer_overdue_transitions_total",
		Help: "Total number of dealers transitioned to overdue",
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total number of products added to the catalog",
	})

	SMSNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sms_notifications_total",
		Help: "Total number of simulated SMS notifications",
	}, []string{"status"})

	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Total number of authentication attempts",
	}, []string{"result"})

	SaleRecordLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sale_record_latency_seconds",
		Help:    "Latency of sale recording operations",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
