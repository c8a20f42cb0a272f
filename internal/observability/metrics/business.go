package metrics

import (
	"newsroom-cms/internal/domain/entity"
)

// UpdateArticlesByStatus sets the article count gauge for one status.
// The stats collector calls this for every status each tick, so stale
// statuses drop to their real count instead of lingering.
func UpdateArticlesByStatus(status entity.Status, count int) {
	ArticlesByStatus.WithLabelValues(string(status)).Set(float64(count))
}

// UpdateSectionsTotal sets the section catalog size gauge.
func UpdateSectionsTotal(count int) {
	SectionsTotal.Set(float64(count))
}

// RecordSession counts a successful authentication.
func RecordSession(role entity.Role) {
	name := string(role)
	if name == "" {
		name = "public"
	}
	SessionsStartedTotal.WithLabelValues(name).Inc()
}

// RecordBlobOperation counts a blob store call.
func RecordBlobOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	BlobOperationsTotal.WithLabelValues(operation, result).Inc()
}
