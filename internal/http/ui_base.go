package httpx

import (
	"context"
	"html"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/http/ui/viewmodel"
	"github.com/manytooh/catalog-admin/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// BrandsService is a minimal interface for UI needs.
type BrandsService interface {
	List(ctx context.Context) ([]model.Brand, error)
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	Create(ctx context.Context, req *model.CreateBrandRequest) error
	Update(ctx context.Context, id string, req *model.UpdateBrandRequest) error
	Delete(ctx context.Context, id string) error
}

// CategoriesService is a minimal interface for UI needs.
type CategoriesService interface {
	List(ctx context.Context) ([]model.ProductCategory, error)
	GetByID(ctx context.Context, id string) (*model.ProductCategory, error)
	Create(ctx context.Context, req *model.CreateProductCategoryRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductCategoryRequest) error
	Delete(ctx context.Context, id string) error
}

// TypesService is a minimal interface for UI needs.
type TypesService interface {
	List(ctx context.Context) ([]model.ProductType, error)
	GetByID(ctx context.Context, id string) (*model.ProductType, error)
	Create(ctx context.Context, req *model.CreateProductTypeRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductTypeRequest) error
	Delete(ctx context.Context, id string) error
}

// ProductsService is a minimal interface for UI needs.
type ProductsService interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req *model.CreateProductRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ BrandsService     = (*service.BrandService)(nil)
	_ CategoriesService = (*service.ProductCategoryService)(nil)
	_ TypesService      = (*service.ProductTypeService)(nil)
	_ ProductsService   = (*service.ProductService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T           *TemplateRenderer
	BrandSvc    BrandsService
	CategorySvc CategoriesService
	TypeSvc     TypesService
	ProductSvc  ProductsService
	IsDev       bool // development mode flag for enhanced error reporting
	Logger      *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// getPageParams parses pagination params from URL query with sane defaults.
// Only the offered page sizes are accepted.
func getPageParams(q url.Values) (int, int) {
	page := 1
	pageSize := defaultPageSize
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if s := q.Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && allowedPageSize(n) {
			pageSize = n
		}
	}
	return page, pageSize
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// deleteHandlerOpts encapsulates common delete-handling behavior for UI endpoints.
type deleteHandlerOpts struct {
	ServiceAvailable func() bool
	Delete           func(ctx context.Context, id string) error
	SuccessMessage   string
	FailureMessage   string
}

// handleDelete coordinates delete flows shared across UI handlers. On success
// htmx requests get an empty 200 so the row swap removes the table row in
// place; non-htmx requests never reach these endpoints. Failures keep the row
// and surface a toast.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteHandlerOpts) {
	id := r.PathValue("id")
	if id == "" || (opts.ServiceAvailable != nil && !opts.ServiceAvailable()) {
		h.NotFound(w, r)
		return
	}

	if err := opts.Delete(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "delete failed", "id", id, "error", err)
		triggerToast(w, opts.FailureMessage, "error")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	triggerToast(w, opts.SuccessMessage, "success")
	w.WriteHeader(http.StatusOK)
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// FormFrameOpts captures the parameters required to normalize common form data.
type FormFrameOpts struct {
	R           *http.Request
	Data        map[string]any
	DefaultMode FormMode
	MetaForMode func(FormMode) PageMeta
}

// prepareFormFrame normalizes common form rendering fields (Errors, Mode, base layout).
// Returns the hydrated data map and the resolved form mode for further customization.
func prepareFormFrame(opts FormFrameOpts) (map[string]any, FormMode) {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok || data["Errors"] == nil {
		data["Errors"] = map[string]string{}
	}

	mode := resolveFormMode(data["Mode"], opts.DefaultMode)
	data["Mode"] = string(mode)

	if opts.MetaForMode != nil && opts.R != nil {
		maps.Copy(data, basePageData(opts.R, opts.MetaForMode(mode)))
	}

	return data, mode
}

// resolveFormMode coerces assorted Mode representations to a FormMode value.
func resolveFormMode(raw any, fallback FormMode) FormMode {
	switch v := raw.(type) {
	case FormMode:
		if v != "" {
			return v
		}
	case string:
		candidate := FormMode(strings.TrimSpace(v))
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}

// buildPageURL returns a URL with page and page_size set, preserving other query params.
// basePath should be the path without query string (e.g., "/brands", "/products").
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient/htmx params and empty keys
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		if len(v) == 0 {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		role := string(session.Role)
		layout.User = &viewmodel.User{
			Username: session.Username,
			Role:     role,
		}
		layout.IsAuthenticated = true
		layout.IsAdmin = role == "admin"
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			markPageError(data)
		}
	}
	h.renderDashboardPage(w, r, data)
}

// renderDashboardPage renders a dashboard page with proper HTMX partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	headerTitle := `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`
	if _, err := w.Write([]byte(headerTitle)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

func markPageError(data map[string]any) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = "An unexpected error occurred. Please try again."
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if provider, ok := data.(viewmodel.LayoutProvider); ok {
		if layout := provider.LayoutData(); layout != nil {
			return *layout
		}
	}

	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}
	if layout, ok := data.(*viewmodel.Layout); ok && layout != nil {
		return *layout
	}

	m, ok := data.(map[string]any)
	if !ok {
		return viewmodel.Layout{}
	}

	layout := viewmodel.Layout{}
	if v, ok := m["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := m["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := m["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div class="template-error">
				<h2>Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre>` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
