package auth

import (
	"net/http"
	"strings"

	"newsroom-cms/internal/domain/entity"
)

// guardedRoutes maps the administrative surface to the minimum role it
// requires. Article-level rules live in the workflow engine and are not
// repeated here; this table only covers routes with no per-article context,
// currently section management. The review queue is deliberately absent: a
// non-editor asking for it gets an empty queue from the service, not a 403.
var guardedRoutes = []struct {
	method string
	prefix string
	role   entity.Role
}{
	{http.MethodPost, "/sections", entity.RoleEditor},
	{http.MethodPut, "/sections/", entity.RoleEditor},
	{http.MethodDelete, "/sections/", entity.RoleEditor},
}

func checkRolePermission(role entity.Role, method, path string) bool {
	for _, g := range guardedRoutes {
		if g.method != method || !strings.HasPrefix(path, g.prefix) {
			continue
		}
		return role == g.role
	}
	// Routes outside the table only required authentication.
	return role.Valid()
}
