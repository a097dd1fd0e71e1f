// Package metrics provides Prometheus metrics for the portal server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RPC metrics
	rpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_rpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	rpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_rpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Document metrics
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_uploads_total",
			Help: "Total document uploads by stage",
		},
		[]string{"stage"},
	)

	uploadedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_uploaded_bytes_total",
			Help: "Total bytes of completed uploads",
		},
	)

	inspectionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_inspection_transitions_total",
			Help: "Inspection status changes",
		},
		[]string{"from", "to"},
	)

	nodesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_nodes_deleted_total",
			Help: "Total delete requests applied to the library tree",
		},
	)

	storageCleanupFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_storage_cleanup_failures_total",
			Help: "Objects that could not be removed from storage after a delete",
		},
	)

	// Auth metrics
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_login_attempts_total",
			Help: "Total login attempts",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRPC records a finished gRPC call.
func RecordRPC(method, code string, duration time.Duration) {
	rpcRequestsTotal.WithLabelValues(method, code).Inc()
	rpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordUploadStarted counts a presigned upload handed to a client.
func RecordUploadStarted() {
	uploadsTotal.WithLabelValues("started").Inc()
}

// RecordUploadCompleted counts a confirmed upload and its size.
func RecordUploadCompleted(bytes int64) {
	uploadsTotal.WithLabelValues("completed").Inc()
	uploadedBytes.Add(float64(bytes))
}

// RecordInspectionTransition counts a status change of a document.
func RecordInspectionTransition(from, to string) {
	inspectionTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordDelete() {
	nodesDeletedTotal.Inc()
}

func RecordStorageCleanupFailure() {
	storageCleanupFailuresTotal.Inc()
}

// RecordLogin records a login attempt.
func RecordLogin(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	loginAttemptsTotal.WithLabelValues(result).Inc()
}
