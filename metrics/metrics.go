// Package metrics provides Prometheus metrics for the MikroTik MCP server.
// It tracks tool calls, device command latency, SSH session usage and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "mikrotik_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// DeviceCommandsTotal counts RouterOS commands by verb and outcome
	DeviceCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "device_commands_total",
		Help:      "RouterOS commands executed by verb and outcome",
	}, []string{"verb", "outcome"})

	// DeviceCommandDuration measures connect plus execute time per command
	DeviceCommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "device_command_duration_seconds",
		Help:      "RouterOS command latency by verb, including SSH connect",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"verb"})

	// ConnectErrors counts failed SSH connects by reason
	ConnectErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "device_connect_errors_total",
		Help:      "Failed SSH connects by reason",
	}, []string{"reason"})

	// ActiveSessions tracks open SSH sessions
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "device_sessions_active",
		Help:      "Number of SSH sessions currently open to the device",
	})

	// SessionWaits counts commands that waited for a free session slot
	SessionWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "device_session_waits_total",
		Help:      "Commands that waited for the session semaphore",
	})

	// RateLimitRejections counts requests rejected due to rate limiting
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected due to rate limiting",
	})

	// AuthFailures counts authentication failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordCommand records one device command. outcome is a classifier label
// such as "payload", "empty" or "failure".
func RecordCommand(verb, outcome string, duration float64) {
	if verb == "" {
		verb = "unknown"
	}
	DeviceCommandsTotal.WithLabelValues(verb, outcome).Inc()
	DeviceCommandDuration.WithLabelValues(verb).Observe(duration)
}

// RecordConnectError counts a failed connect
func RecordConnectError(reason string) {
	ConnectErrors.WithLabelValues(reason).Inc()
}
