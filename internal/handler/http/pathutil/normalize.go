package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `/ready$`), Template: "/articles/:id/ready"},
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `/publish$`), Template: "/articles/:id/publish"},
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `/deactivate$`), Template: "/articles/:id/deactivate"},
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/sections/` + uuidSegment + `$`), Template: "/sections/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts paths with document IDs to template form
// (/articles/3f1c... -> /articles/:id). Static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
