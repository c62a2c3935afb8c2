// Package metrics defines and registers all custom Prometheus metrics for
// the notes API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init and are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// SignupsTotal counts account creations.
// Label:
//   - result: "ok", "duplicate", or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Failures are not broken down further;
// unknown usernames and wrong passwords are deliberately indistinguishable.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// NotesCreatedTotal counts created notes.
// Label:
//   - idempotent: "replay" when an Idempotency-Key matched a prior create,
//     "new" otherwise
var NotesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of notes created, by idempotency outcome.",
	},
	[]string{"idempotent"},
)

// NotesDeletedTotal counts deleted notes.
var NotesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of notes deleted.",
	},
)

// OperationDuration measures per-operation latency of the note service,
// persistence included.
// Label:
//   - op: "list", "create", "update", "delete", or "search"
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of note operations from service entry to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)
