package httpx

import (
	"context"
	"net/http"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

var categoryConfig = namedEntityConfig{
	Singular: "Product Category",
	Plural:   "Product Categories",
	BasePath: "/product-categories",
	ListPage: PageCategories,
	FormPage: PageCategoryForm,
	ItemsKey: "Categories",
}

type categoryFormService struct {
	svc CategoriesService
}

func (s categoryFormService) Create(ctx context.Context, f nameFormData) error {
	return s.svc.Create(ctx, &model.CreateProductCategoryRequest{Name: f.Name})
}

func (s categoryFormService) Update(ctx context.Context, id string, f nameFormData) error {
	return s.svc.Update(ctx, id, &model.UpdateProductCategoryRequest{Name: &f.Name})
}

// Categories renders the product category list page.
func (h *UIHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.ProductCategory]{
		Handler: h,
		W:       w,
		R:       r,
		FetchAll: func(ctx context.Context) ([]model.ProductCategory, error) {
			return h.CategorySvc.List(ctx)
		},
		Columns: []ListColumn[model.ProductCategory]{
			{Key: "name", Value: func(c model.ProductCategory) string { return c.Name }},
			{Key: "id", Value: func(c model.ProductCategory) string { return c.ID }},
		},
		DefaultSort:      "name",
		BasePath:         categoryConfig.BasePath,
		PageMeta:         categoryConfig.listMeta(),
		ItemsKey:         categoryConfig.ItemsKey,
		ErrorMessage:     "Unable to load product categories.",
		ServiceAvailable: func() bool { return h.CategorySvc != nil },
	})
}

func (h *UIHandlers) CategoryNew(w http.ResponseWriter, r *http.Request) {
	h.renderNamedEntityNew(w, r, categoryConfig)
}

func (h *UIHandlers) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" || h.CategorySvc == nil {
		h.NotFound(w, r)
		return
	}
	c, err := h.CategorySvc.GetByID(r.Context(), id)
	if err != nil || c == nil {
		h.NotFound(w, r)
		return
	}
	h.renderNamedEntityEdit(w, r, categoryConfig, c.ID, c.Name)
}

func (h *UIHandlers) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, categoryConfig, FormModeCreate, categoryFormService{svc: h.CategorySvc})
}

func (h *UIHandlers) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, categoryConfig, FormModeEdit, categoryFormService{svc: h.CategorySvc})
}

func (h *UIHandlers) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.CategorySvc != nil },
		Delete:           func(ctx context.Context, id string) error { return h.CategorySvc.Delete(ctx, id) },
		SuccessMessage:   "Product category deleted.",
		FailureMessage:   "Unable to delete product category.",
	})
}
