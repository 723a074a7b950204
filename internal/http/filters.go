package httpx

import (
	"net/url"
	"strings"
)

const (
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts and validates sort field and direction from URL query parameters.
// It supports two formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=product_name:desc)
// 2. Separate format: ?sort=field&dir=direction
//
// The direction is normalized to lowercase and validated (must be "asc" or "desc").
// If the direction is invalid, it returns an empty string for dir.
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	parts := strings.SplitN(sortParam, ":", 2)
	if len(parts) == 2 {
		fieldPart := strings.TrimSpace(parts[0])
		dirPart := strings.ToLower(strings.TrimSpace(parts[1]))
		if dirPart == SortDirAsc || dirPart == SortDirDesc {
			return fieldPart, dirPart
		}
		return fieldPart, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}

	return sortParam, ""
}
