package httpx

import (
	"context"
	"net/http"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

var typeConfig = namedEntityConfig{
	Singular: "Product Type",
	Plural:   "Product Types",
	BasePath: "/product-type",
	ListPage: PageTypes,
	FormPage: PageTypeForm,
	ItemsKey: "Types",
}

type typeFormService struct {
	svc TypesService
}

func (s typeFormService) Create(ctx context.Context, f nameFormData) error {
	return s.svc.Create(ctx, &model.CreateProductTypeRequest{Name: f.Name})
}

func (s typeFormService) Update(ctx context.Context, id string, f nameFormData) error {
	return s.svc.Update(ctx, id, &model.UpdateProductTypeRequest{Name: &f.Name})
}

// ProductTypes renders the product type list page.
func (h *UIHandlers) ProductTypes(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.ProductType]{
		Handler: h,
		W:       w,
		R:       r,
		FetchAll: func(ctx context.Context) ([]model.ProductType, error) {
			return h.TypeSvc.List(ctx)
		},
		Columns: []ListColumn[model.ProductType]{
			{Key: "name", Value: func(t model.ProductType) string { return t.Name }},
			{Key: "id", Value: func(t model.ProductType) string { return t.ID }},
		},
		DefaultSort:      "name",
		BasePath:         typeConfig.BasePath,
		PageMeta:         typeConfig.listMeta(),
		ItemsKey:         typeConfig.ItemsKey,
		ErrorMessage:     "Unable to load product types.",
		ServiceAvailable: func() bool { return h.TypeSvc != nil },
	})
}

func (h *UIHandlers) ProductTypeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNamedEntityNew(w, r, typeConfig)
}

func (h *UIHandlers) ProductTypeEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" || h.TypeSvc == nil {
		h.NotFound(w, r)
		return
	}
	t, err := h.TypeSvc.GetByID(r.Context(), id)
	if err != nil || t == nil {
		h.NotFound(w, r)
		return
	}
	h.renderNamedEntityEdit(w, r, typeConfig, t.ID, t.Name)
}

func (h *UIHandlers) ProductTypeCreate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, typeConfig, FormModeCreate, typeFormService{svc: h.TypeSvc})
}

func (h *UIHandlers) ProductTypeUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleNamedEntityForm(w, r, typeConfig, FormModeEdit, typeFormService{svc: h.TypeSvc})
}

func (h *UIHandlers) ProductTypeDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.TypeSvc != nil },
		Delete:           func(ctx context.Context, id string) error { return h.TypeSvc.Delete(ctx, id) },
		SuccessMessage:   "Product type deleted.",
		FailureMessage:   "Unable to delete product type.",
	})
}
