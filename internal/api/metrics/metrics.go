// Package metrics defines and registers all custom Prometheus metrics for the
// mission board API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mission_board"

// ── Mission lifecycle metrics ─────────────────────────────────────────────────

// MissionsCreatedTotal counts newly posted missions.
// Label:
//   - ui_library: the UI library the mission targets (e.g. "react", "vue")
var MissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "missions_created_total",
		Help:      "Total number of missions created, by UI library.",
	},
	[]string{"ui_library"},
)

// MissionsCompletedTotal counts missions that reached the completed state.
var MissionsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "missions_completed_total",
		Help:      "Total number of missions completed via feedback.",
	},
)

// MissionsDeletedTotal counts open missions deleted (and refunded) by their creator.
var MissionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "missions_deleted_total",
		Help:      "Total number of open missions deleted by their creator.",
	},
)

// ApplicationsTotal counts applications filed against open missions.
var ApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of mission applications filed.",
	},
)

// ApplicationResponsesTotal counts creator decisions on applications.
// Label:
//   - outcome: "accepted" or "rejected"
var ApplicationResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_responses_total",
		Help:      "Total number of creator responses to applications, by outcome.",
	},
	[]string{"outcome"},
)

// VersionConflictsTotal counts optimistic-lock conflicts on mission writes.
// Each conflict triggers a re-read and retry.
var VersionConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "version_conflicts_total",
		Help:      "Total number of optimistic concurrency conflicts on mission updates.",
	},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// CreditsMovedTotal tracks credit volume through the ledger.
// Label:
//   - operation: "escrow", "refund", or "payout"
var CreditsMovedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credits_moved_total",
		Help:      "Total credits moved by ledger operations, by operation.",
	},
	[]string{"operation"},
)
