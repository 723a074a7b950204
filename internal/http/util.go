package httpx

import (
	"net/http"
	"strconv"
)

// pageSizes are the page sizes offered by the list views. Requests asking
// for anything else fall back to the default.
var pageSizes = []int{10, 20, 30, 50} //nolint:gochecknoglobals // read-only lookup

const defaultPageSize = 10

// allowedPageSize reports whether n is one of the offered page sizes.
func allowedPageSize(n int) bool {
	for _, s := range pageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
