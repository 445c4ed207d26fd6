package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ProgressRecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "progress_recompute_duration_seconds",
			Help:    "Project progress recompute duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"status"}, // status: ok, error
	)

	DocumentUploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_upload_count",
			Help: "Total number of document uploads",
		},
		[]string{"kind", "status"}, // kind: drawing, photo, invoice
	)

	AuditPublishCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_publish_count",
			Help: "Total number of audit events published to the queue",
		},
		[]string{"status"}, // status: success, failed
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordProgressRecompute(status string, duration time.Duration) {
	ProgressRecomputeDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func IncrementDocumentUpload(kind, status string) {
	DocumentUploadCount.WithLabelValues(kind, status).Inc()
}

func IncrementAuditPublish(status string) {
	AuditPublishCount.WithLabelValues(status).Inc()
}
