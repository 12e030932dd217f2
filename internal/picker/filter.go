package picker

import (
	"path/filepath"
	"strings"

	"imgswipe/internal/domain"
)

// MatchesFilter checks if an image matches the given filter query.
// "ext:png" matches by extension; anything else matches name or
// directory case-insensitively.
func MatchesFilter(ref domain.ImageRef, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	if strings.HasPrefix(query, "ext:") {
		ext := strings.TrimPrefix(strings.TrimPrefix(query, "ext:"), ".")
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(ref.Path)), ".") == ext
	}

	return strings.Contains(strings.ToLower(ref.Name), query) ||
		strings.Contains(strings.ToLower(filepath.Dir(ref.Path)), query)
}
