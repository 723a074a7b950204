package httpx

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/http/ui/viewmodel"
)

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	require.NoError(t, err)
	return renderer
}

func TestNewTemplateRendererRequiresFS(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	assert.Error(t, err)
}

func TestRenderFullDashboard(t *testing.T) {
	renderer := newTestRenderer(t)

	now := time.Now()
	data := map[string]any{
		"Title":           "Catalog Admin - Dashboard",
		"PageTitle":       "Dashboard",
		"CurrentPage":     PageDashboard,
		"IsAuthenticated": true,
		"IsAdmin":         true,
		"CSRFToken":       "tok",
		"User":            &viewmodel.User{Username: "pat", Role: "admin"},
		"ProductCount":    3,
		"BrandCount":      2,
		"CategoryCount":   1,
		"TypeCount":       1,
		"DangerousCount":  1,
		"RecentProducts": []model.Product{
			{Name: "Total Whitening", BrandName: "Colgate", CategoryName: "Toothpaste", IsDangerous: "true", CreatedAt: &now},
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/dashboard", nil)
	require.NoError(t, renderer.RenderFull(w, r, data))

	body := w.Body.String()
	assert.Contains(t, body, "Dashboard")
	assert.Contains(t, body, "Total Whitening")
	assert.Contains(t, body, "Colgate")
	assert.Contains(t, body, `name="csrf_token"`)
}

func TestRenderPartialBrandsList(t *testing.T) {
	renderer := newTestRenderer(t)

	data := map[string]any{
		"Title":       "Catalog Admin - Brands",
		"PageTitle":   "Brands",
		"CurrentPage": PageBrands,
		"CSRFToken":   "tok",
		"BasePath":    "/brands",
		"PageSizes":   pageSizes,
		"PageSize":    10,
		"Query":       "",
		"TotalCount":  1,
		"StartIndex":  1,
		"EndIndex":    1,
		"HasPrev":     false,
		"HasNext":     false,
		"Brands": []model.Brand{
			{ID: "b-1", Name: "Elmex"},
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/brands", nil)
	require.NoError(t, renderer.RenderPartial(w, r, data))

	body := w.Body.String()
	assert.Contains(t, body, "Elmex")
	assert.Contains(t, body, "/brands/b-1/edit")
	assert.NotContains(t, body, "<html")
}

func TestRenderLoginPage(t *testing.T) {
	renderer := newTestRenderer(t)

	data := map[string]any{
		"Title":        "Catalog Admin - Sign in",
		"CSRFToken":    "tok",
		"Error":        true,
		"ErrorMessage": "Invalid username or password.",
		"Username":     "pat",
		"RedirectURI":  "/brands",
	}

	w := httptest.NewRecorder()
	require.NoError(t, renderer.renderTemplate(w, "login-page", data))

	body := w.Body.String()
	assert.Contains(t, body, "Invalid username or password.")
	assert.Contains(t, body, `value="pat"`)
	assert.Contains(t, body, `value="/brands"`)
}

func TestRenderErrorPage(t *testing.T) {
	renderer := newTestRenderer(t)

	data := map[string]any{
		"Title":   "Page not found",
		"Code":    404,
		"Message": "The page you requested does not exist.",
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/nope", nil)
	require.NoError(t, renderer.RenderError(w, r, data))

	assert.Contains(t, w.Body.String(), "The page you requested does not exist.")
}

func TestContentTemplateFor(t *testing.T) {
	assert.Equal(t, "brands-content", ContentTemplateFor(PageBrands))
	assert.Equal(t, "product-form-content", ContentTemplateFor(PageProductForm))
	assert.Equal(t, "dashboard-content", ContentTemplateFor("unknown"))
}
