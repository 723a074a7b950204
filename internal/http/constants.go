package httpx

// CurrentPage constants identify pages for navigation state and template mapping.
const (
	PageDashboard = "dashboard"
	PageLogin     = "login"

	PageBrands    = "brands"
	PageBrandForm = "brand-form"

	PageCategories   = "categories"
	PageCategoryForm = "category-form"

	PageTypes    = "types"
	PageTypeForm = "type-form"

	PageProducts    = "products"
	PageProductForm = "product-form"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // from project root
	TemplatePathFromTest = "../../frontend/templates" // from internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup
var contentTemplates = map[string]string{
	PageDashboard:    "dashboard-content",
	PageBrands:       "brands-content",
	PageBrandForm:    "brand-form-content",
	PageCategories:   "categories-content",
	PageCategoryForm: "category-form-content",
	PageTypes:        "types-content",
	PageTypeForm:     "type-form-content",
	PageProducts:     "products-content",
	PageProductForm:  "product-form-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
