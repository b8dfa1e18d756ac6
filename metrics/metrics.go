package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquawatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aquawatch_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Ingest metrics
	ReadingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquawatch_readings_ingested_total",
			Help: "Total number of sensor readings ingested",
		},
		[]string{"source"}, // source: auth, public
	)

	AlertsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquawatch_alerts_generated_total",
			Help: "Total number of alerts generated by the rule evaluator",
		},
		[]string{"level"}, // level: warning, danger
	)

	AlertsSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aquawatch_alerts_suppressed_total",
			Help: "Alerts suppressed by the per-source debounce policy",
		},
	)

	// WebSocket metrics
	WSClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aquawatch_ws_clients",
			Help: "Number of currently connected WebSocket clients",
		},
	)

	BroadcastsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aquawatch_ws_broadcasts_sent_total",
			Help: "Broadcast messages delivered to individual peers",
		},
	)

	BroadcastsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aquawatch_ws_broadcasts_failed_total",
			Help: "Broadcast deliveries that failed and caused peer removal",
		},
	)

	// Prediction metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aquawatch_predictions_total",
			Help: "Total number of predictions served",
		},
		[]string{"task", "mode"}, // task: safety, disease; mode: model, fallback
	)
)
