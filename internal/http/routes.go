package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	catalogadmin "github.com/manytooh/catalog-admin"
	domainauth "github.com/manytooh/catalog-admin/internal/domain/auth"
	"github.com/manytooh/catalog-admin/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Brands     *service.BrandService
	Categories *service.ProductCategoryService
	Types      *service.ProductTypeService
	Products   *service.ProductService
	Auth       *service.AuthService

	CookieDomain string
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	uiHandlers := setupUIHandlers(services)

	cfg := uiRouteConfig{Auth: services.Auth, CookieDomain: services.CookieDomain}
	if uiHandlers != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			T:            uiHandlers.T,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		registerAuthRoutes(mux, authHandlers, cfg)
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	return BrowserDetection()(handler)
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/static")

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(catalogadmin.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, resolver := setupProdAssets(diskManifestPath)
	return templateFS, criticalCSSFS, resolver
}

// setupProdAssets configures critical CSS FS and asset resolver for production mode.
func setupProdAssets(diskManifestPath string) (fs.FS, *AssetResolver) {
	staticSub, err := fs.Sub(catalogadmin.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return nil, tryDiskManifest(diskManifestPath)
	}

	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("asset manifest not loaded from embedded FS: %v", err)
		return staticSub, tryDiskManifest(diskManifestPath)
	}

	return staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	var criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")

	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}

	if resolver == nil {
		resolver = &AssetResolver{}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:           tr,
		BrandSvc:    services.Brands,
		CategorySvc: services.Categories,
		TypeSvc:     services.Types,
		ProductSvc:  services.Products,
		IsDev:       services.IsDev,
		Logger:      services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(
			http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))),
		)
	}

	staticSub, err := fs.Sub(catalogadmin.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(
			http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))),
		)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Content-hashed filenames, including optional .map (e.g., app.abc123.js)
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         *service.AuthService
	CookieDomain string
}

// csrf returns the CSRF middleware shared by the form-bearing routes.
func (cfg uiRouteConfig) csrf() func(http.Handler) http.Handler {
	return CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
}

// staffWrap gates a route to any signed-in staff or admin account.
func (cfg uiRouteConfig) staffWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireRoleBrowser(cfg.Auth, domainauth.RoleStaff)
}

// adminWrap gates a route to admin accounts and applies CSRF protection.
func (cfg uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := cfg.csrf()
	roleCheck := RequireRoleBrowser(cfg.Auth, domainauth.RoleAdmin)
	return func(h http.Handler) http.Handler {
		return roleCheck(csrf(h))
	}
}

// registerAuthRoutes wires the sign-in and sign-out flows. The login page
// is public but bounces already-authenticated visitors to the dashboard.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg uiRouteConfig) {
	csrf := cfg.csrf()
	public := func(hh http.Handler) http.Handler {
		if cfg.Auth == nil {
			return csrf(hh)
		}
		return RedirectAuthenticated(cfg.Auth)(csrf(hh))
	}
	mux.Handle("GET /login", public(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /login", public(http.HandlerFunc(h.Login)))
	mux.Handle("POST /logout", csrf(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
}

// registerUIRoutes delegates to per-domain UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIDashboardRoutes(mux, h, cfg)
	registerUIBrandRoutes(mux, h, cfg)
	registerUICategoryRoutes(mux, h, cfg)
	registerUITypeRoutes(mux, h, cfg)
	registerUIProductRoutes(mux, h, cfg)
}

// registerUIDashboardRoutes wires main dashboard/navigation pages.
func registerUIDashboardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.staffWrap()
	mux.Handle("GET /", wrap(http.HandlerFunc(h.Index)))
	mux.Handle("GET /dashboard", wrap(http.HandlerFunc(h.Dashboard)))
}

func registerUIBrandRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /brands", wrapAdmin(http.HandlerFunc(h.Brands)))
	mux.Handle("GET /brands/new", wrapAdmin(http.HandlerFunc(h.BrandNew)))
	mux.Handle("GET /brands/{id}/edit", wrapAdmin(http.HandlerFunc(h.BrandEdit)))
	mux.Handle("POST /brands", wrapAdmin(http.HandlerFunc(h.BrandCreate)))
	mux.Handle("POST /brands/{id}", wrapAdmin(http.HandlerFunc(h.BrandUpdate)))
	mux.Handle("POST /brands/{id}/delete", wrapAdmin(http.HandlerFunc(h.BrandDelete)))
}

func registerUICategoryRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /product-categories", wrapAdmin(http.HandlerFunc(h.Categories)))
	mux.Handle("GET /product-categories/new", wrapAdmin(http.HandlerFunc(h.CategoryNew)))
	mux.Handle("GET /product-categories/{id}/edit", wrapAdmin(http.HandlerFunc(h.CategoryEdit)))
	mux.Handle("POST /product-categories", wrapAdmin(http.HandlerFunc(h.CategoryCreate)))
	mux.Handle("POST /product-categories/{id}", wrapAdmin(http.HandlerFunc(h.CategoryUpdate)))
	mux.Handle("POST /product-categories/{id}/delete", wrapAdmin(http.HandlerFunc(h.CategoryDelete)))
}

// registerUITypeRoutes wires product type pages. The base path is singular
// to match the backend's established URL scheme.
func registerUITypeRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /product-type", wrapAdmin(http.HandlerFunc(h.ProductTypes)))
	mux.Handle("GET /product-type/new", wrapAdmin(http.HandlerFunc(h.ProductTypeNew)))
	mux.Handle("GET /product-type/{id}/edit", wrapAdmin(http.HandlerFunc(h.ProductTypeEdit)))
	mux.Handle("POST /product-type", wrapAdmin(http.HandlerFunc(h.ProductTypeCreate)))
	mux.Handle("POST /product-type/{id}", wrapAdmin(http.HandlerFunc(h.ProductTypeUpdate)))
	mux.Handle("POST /product-type/{id}/delete", wrapAdmin(http.HandlerFunc(h.ProductTypeDelete)))
}

func registerUIProductRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /products", wrapAdmin(http.HandlerFunc(h.Products)))
	mux.Handle("GET /products/new", wrapAdmin(http.HandlerFunc(h.ProductNew)))
	mux.Handle("GET /products/{id}/edit", wrapAdmin(http.HandlerFunc(h.ProductEdit)))
	mux.Handle("POST /products", wrapAdmin(http.HandlerFunc(h.ProductCreate)))
	mux.Handle("POST /products/classify-ingredients", wrapAdmin(http.HandlerFunc(h.ClassifyIngredients)))
	mux.Handle("POST /products/{id}", wrapAdmin(http.HandlerFunc(h.ProductUpdate)))
	mux.Handle("POST /products/{id}/delete", wrapAdmin(http.HandlerFunc(h.ProductDelete)))
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}
