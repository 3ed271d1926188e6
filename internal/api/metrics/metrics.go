// Package metrics defines and registers all custom Prometheus metrics for
// the admin API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry on
// package import, before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staffhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts password reset requests that produced a token.
var PasswordResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset tokens issued.",
	},
)

// ── Assignation metrics ───────────────────────────────────────────────────────

// AssignationsCreatedTotal counts assignations registered successfully.
var AssignationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignations_created_total",
		Help:      "Total number of assignations created.",
	},
)

// AssignationsTerminatedTotal counts assignations closed out.
var AssignationsTerminatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignations_terminated_total",
		Help:      "Total number of assignations terminated.",
	},
)

// ── Mailer metrics ────────────────────────────────────────────────────────────

// MailerQueueDepth tracks the number of reset notifications waiting for a
// worker across all dispatcher channels.
var MailerQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mailer_queue_depth",
		Help:      "Current number of reset notifications pending in the dispatcher.",
	},
)
