// Package metrics defines and registers the custom Prometheus metrics for
// the customer API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto. HTTP-level metrics come from the echoprometheus middleware and
// are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "customerapi"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer token checks made by the auth guard.
// Label:
//   - result: "success", "rejected" (bad/expired/revoked token) or
//     "unknown_subject" (valid token whose customer no longer exists)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)

// RoleDenialsTotal counts requests refused by the role guard.
// Label:
//   - required_role: the role the route demands ("admin" or "customer")
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of requests rejected with 403 by the role guard.",
	},
	[]string{"required_role"},
)
