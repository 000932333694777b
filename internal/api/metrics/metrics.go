// Package metrics defines the custom Prometheus metrics of the food ordering
// API. HTTP request metrics come from the echoprometheus middleware; the
// counters here track auth outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "food_ordering"

// Result label values shared by the auth counters.
const (
	ResultSuccess   = "success"
	ResultConflict  = "conflict"
	ResultInvalid   = "invalid"
	ResultThrottled = "throttled"
	ResultError     = "error"
)

// RegistrationsTotal counts registration attempts.
// Labels:
//   - result: success, conflict, invalid or error
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - result: success, invalid, throttled or error
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RefreshesTotal counts access token refreshes.
// Labels:
//   - result: success, invalid or error
var RefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "token_refreshes_total",
		Help:      "Total number of access token refresh attempts, by result.",
	},
	[]string{"result"},
)
