package httpx

import (
	"context"
	"net/http"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

//nolint:gochecknoglobals // static route/page wiring for the brand views
var brandConfig = namedEntityConfig{
	Singular: "Brand",
	Plural:   "Brands",
	BasePath: "/brands",
	ListPage: PageBrands,
	FormPage: PageBrandForm,
	ItemsKey: "Brands",
}

// brandFormService adapts BrandsService to the generic form workflow.
type brandFormService struct {
	svc BrandsService
}

func (s brandFormService) Create(ctx context.Context, f nameFormData) error {
	return s.svc.Create(ctx, &model.CreateBrandRequest{Name: f.Name})
}

func (s brandFormService) Update(ctx context.Context, id string, f nameFormData) error {
	return s.svc.Update(ctx, id, &model.UpdateBrandRequest{Name: &f.Name})
}

// Brands renders the brand list page.
func (h *UIHandlers) Brands(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Brand]{
		Handler: h,
		W:       w,
		R:       r,
		FetchAll: func(ctx context.Context) ([]model.Brand, error) {
			return h.BrandSvc.List(ctx)
		},
		Columns: []ListColumn[model.Brand]{
			{Key: "name", Value: func(b model.Brand) string { return b.Name }},
			{Key: "id", Value: func(b model.Brand) string { return b.ID }},
		},
		DefaultSort:      "name",
		BasePath:         brandConfig.BasePath,
		PageMeta:         brandConfig.listMeta(),
		ItemsKey:         brandConfig.ItemsKey,
		ErrorMessage:     "Unable to load brands.",
		ServiceAvailable: func() bool { return h.BrandSvc != nil },
	})
}

// BrandNew renders the create form.
func (h *UIHandlers) BrandNew(w http.ResponseWriter, r *http.Request) {
	h.renderNamedEntityNew(w, r, brandConfig)
}

// BrandEdit renders the edit form populated from an existing brand.
func (h *UIHandlers) BrandEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" || h.BrandSvc == nil {
		h.NotFound(w, r)
		return
	}
	b, err := h.BrandSvc.GetByID(r.Context(), id)
	if err != nil || b == nil {
		h.NotFound(w, r)
		return
	}
	h.renderNamedEntityEdit(w, r, brandConfig, b.ID, b.Name)
}

// BrandCreate handles the create form submission.
func (h *UIHandlers) BrandCreate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, brandConfig, FormModeCreate, brandFormService{svc: h.BrandSvc})
}

// BrandUpdate handles the edit form submission.
func (h *UIHandlers) BrandUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, brandConfig, FormModeEdit, brandFormService{svc: h.BrandSvc})
}

// BrandDelete handles deleting a brand from the UI.
func (h *UIHandlers) BrandDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.BrandSvc != nil },
		Delete:           func(ctx context.Context, id string) error { return h.BrandSvc.Delete(ctx, id) },
		SuccessMessage:   "Brand deleted.",
		FailureMessage:   "Unable to delete brand.",
	})
}
