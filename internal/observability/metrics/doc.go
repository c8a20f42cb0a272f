// Package metrics provides Prometheus metrics for the editorial domain:
// article counts per lifecycle status, the section catalog size and session
// activity. Transport-level metrics live with the HTTP layer; these gauges
// describe the content itself.
//
// All metrics register with the Prometheus default registry and are exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "newsroom-cms/internal/observability/metrics"
//
//	metrics.UpdateArticlesByStatus(entity.StatusPublished, 42)
//	metrics.RecordSession(entity.RoleReporter)
package metrics
