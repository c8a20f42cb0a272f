package article

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"newsroom-cms/internal/domain/workflow"
)

// Prometheus metrics for editorial workflow monitoring
var (
	// workflowDecisionsTotal tracks workflow engine decisions per action and outcome
	workflowDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workflow_decisions_total",
			Help: "Total number of workflow decisions",
		},
		[]string{"action", "outcome"}, // outcome: accepted|forbidden|invalid_transition
	)
)

// recordDecision records the outcome of a workflow decision for an action.
func recordDecision(action workflow.Action, err error) {
	outcome := "accepted"
	switch {
	case errors.Is(err, workflow.ErrForbidden):
		outcome = "forbidden"
	case errors.Is(err, workflow.ErrInvalidTransition):
		outcome = "invalid_transition"
	case err != nil:
		return
	}
	workflowDecisionsTotal.WithLabelValues(string(action), outcome).Inc()
}
