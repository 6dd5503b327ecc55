package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogFallbackReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fallback_reads_total",
		Help: "Total number of product reads served from the fallback dataset after a store failure",
	}, []string{"operation"})

	ProductWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_writes_total",
		Help: "Total number of admin product writes",
	}, []string{"operation", "result"})

	InquiriesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inquiries_submitted_total",
		Help: "Total number of acknowledged customer inquiries",
	})

	InquiriesRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiries_rejected_total",
		Help: "Total number of rejected customer inquiries",
	}, []string{"reason"})

	InquiriesPersistFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inquiries_persist_failed_total",
		Help: "Total number of acknowledged inquiries that could not be stored",
	})

	InquiryDuplicatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inquiry_duplicates_total",
		Help: "Total number of replayed inquiry submissions",
	})

	InquiryStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_status_changes_total",
		Help: "Total number of inquiry status changes",
	}, []string{"status"})

	AdminAuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_auth_failures_total",
		Help: "Total number of rejected admin requests",
	})

	EventsPublishFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_publish_failed_total",
		Help: "Total number of catalog events that could not be published",
	}, []string{"event_type"})

	LeadsNotifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leads_notified_total",
		Help: "Total number of inquiry events handled by the lead notifier",
	})

	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_latency_seconds",
		Help:    "Latency of catalog store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

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
