package httpx

import (
	"context"
	"net/http"
	"sort"
	"strings"
)

// ListColumn declares a filterable/sortable column for the generic list handler.
// Key is the value accepted by the sort query param; Value folds an item to the
// text used for both free-text filtering and ordering.
type ListColumn[T any] struct {
	Key   string
	Value func(T) string
}

// DataEnricher adds custom data to the template after the page slice is computed.
type DataEnricher[T any] func(builder *TemplateDataBuilder, items []T)

// ListHandlerOpts contains all options needed for the generic list handler.
// The backend returns complete collections, so filtering, sorting, and
// pagination all happen in process.
type ListHandlerOpts[T any] struct {
	// Handler is the UIHandlers instance for rendering (required)
	Handler *UIHandlers
	// W is the HTTP response writer (required)
	W http.ResponseWriter
	// R is the HTTP request (required)
	R *http.Request
	// FetchAll loads the complete collection (required)
	FetchAll func(ctx context.Context) ([]T, error)
	// Columns drive free-text filtering and column sorting
	Columns []ListColumn[T]
	// DefaultSort is the column key used when no sort param is present
	DefaultSort string
	// BasePath is the base URL path for pagination links (e.g., "/brands")
	BasePath string
	// PageMeta contains page metadata for rendering
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g., "Brands")
	ItemsKey string
	// ErrorMessage is the message to display when data fetching fails
	ErrorMessage string
	// EnrichData is an optional function to add custom data to the template
	EnrichData DataEnricher[T]
	// ServiceAvailable should return true when the backing service is ready.
	ServiceAvailable func() bool
}

// HandleList is the generic list view handler. It fetches the full collection,
// applies the free-text filter across the declared columns, sorts, slices the
// requested page, and renders with pagination metadata.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if opts.W == nil || opts.R == nil || opts.Handler == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return
	}

	page, pageSize := getPageParams(opts.R.URL.Query())
	query := strings.TrimSpace(opts.R.URL.Query().Get("q"))
	sortKey, sortDir := ParseSortParam(opts.R.URL.Query(), "sort", "dir")

	if opts.ServiceAvailable != nil && !opts.ServiceAvailable() {
		opts.renderListError(page, pageSize, opts.ErrorMessage)
		return
	}

	items, err := opts.FetchAll(opts.R.Context())
	if err != nil {
		opts.Handler.logger().ErrorContext(opts.R.Context(), "failed to load list data",
			"path", opts.BasePath,
			"error", err,
		)
		opts.renderListError(page, pageSize, opts.ErrorMessage)
		return
	}

	items = filterItems(items, opts.Columns, query)
	sortItems(items, opts.Columns, resolveSortKey(sortKey, opts), sortDir)

	pageItems, pg := slicePage(items, page, pageSize)
	pg.BasePath = opts.BasePath

	builder := NewTemplateData(opts.R, opts.PageMeta).
		WithPagination(pg).
		With("Query", query).
		With("Sort", sortKey).
		With("Dir", sortDir).
		With(opts.ItemsKey, pageItems)

	if opts.EnrichData != nil {
		opts.EnrichData(builder, pageItems)
	}

	opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
}

// filterItems keeps items whose declared columns contain the query, folded
// case-insensitively. An empty query keeps everything.
func filterItems[T any](items []T, columns []ListColumn[T], query string) []T {
	if query == "" || len(columns) == 0 {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col.Value(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// sortItems orders items by the named column. Unknown keys leave the backend
// order untouched.
func sortItems[T any](items []T, columns []ListColumn[T], sortKey, sortDir string) {
	var col *ListColumn[T]
	for i := range columns {
		if columns[i].Key == sortKey {
			col = &columns[i]
			break
		}
	}
	if col == nil {
		return
	}

	desc := sortDir == SortDirDesc
	sort.SliceStable(items, func(i, j int) bool {
		a := strings.ToLower(col.Value(items[i]))
		b := strings.ToLower(col.Value(items[j]))
		if desc {
			return a > b
		}
		return a < b
	})
}

func resolveSortKey[T any](sortKey string, opts ListHandlerOpts[T]) string {
	if sortKey != "" {
		return sortKey
	}
	return opts.DefaultSort
}

// slicePage returns the requested page of items with pagination metadata.
// Pages past the end of the collection snap back to the last page.
func slicePage[T any](items []T, page, pageSize int) ([]T, PaginationData) {
	total := len(items)
	if page < 1 {
		page = 1
	}
	for page > 1 && (page-1)*pageSize >= total {
		page--
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	pg := PaginationData{
		Page:       page,
		PageSize:   pageSize,
		HasPrev:    page > 1,
		HasNext:    end < total,
		TotalCount: total,
	}
	if total > 0 {
		pg.StartIndex = start + 1
		pg.EndIndex = end
	}
	return items[start:end], pg
}

// renderListError renders an error page with pagination metadata.
func (lh *ListHandlerOpts[T]) renderListError(page, pageSize int, errMsg string) {
	builder := NewTemplateData(lh.R, lh.PageMeta).
		WithPagination(PaginationData{Page: page, PageSize: pageSize, BasePath: lh.BasePath}).
		WithError(errMsg)
	lh.Handler.renderDashboardPage(lh.W, lh.R, builder.Build())
}
