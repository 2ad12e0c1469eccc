package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// recommendationWrites tracks the best-effort recommendation writes. The
// write outcome never changes the response, so this counter is the only
// place the failure rate is visible.
var recommendationWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "assistant_recommendation_writes_total",
		Help: "Outcomes of best-effort recommendation persistence attempts",
	},
	[]string{"outcome"},
)
