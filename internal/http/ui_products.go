package httpx

import (
	"context"
	"net/http"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

// Products renders the product list page. Filtering matches across the
// denormalized brand, category, and type names as well as the product
// fields themselves.
func (h *UIHandlers) Products(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Product]{
		Handler: h,
		W:       w,
		R:       r,
		FetchAll: func(ctx context.Context) ([]model.Product, error) {
			return h.ProductSvc.List(ctx)
		},
		Columns: []ListColumn[model.Product]{
			{Key: "name", Value: func(p model.Product) string { return p.Name }},
			{Key: "barcode", Value: func(p model.Product) string { return p.Barcode }},
			{Key: "brand", Value: func(p model.Product) string { return p.BrandName }},
			{Key: "category", Value: func(p model.Product) string { return p.CategoryName }},
			{Key: "type", Value: func(p model.Product) string { return p.TypeName }},
		},
		DefaultSort:      "name",
		BasePath:         "/products",
		PageMeta:         productListMeta(),
		ItemsKey:         "Products",
		ErrorMessage:     "Unable to load products.",
		ServiceAvailable: func() bool { return h.ProductSvc != nil },
	})
}

func productListMeta() PageMeta {
	return PageMeta{
		Title:       "Catalog Admin - Products",
		PageTitle:   "Products",
		CurrentPage: PageProducts,
	}
}

// ProductDelete handles deleting a product from the UI.
func (h *UIHandlers) ProductDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		ServiceAvailable: func() bool { return h.ProductSvc != nil },
		Delete:           func(ctx context.Context, id string) error { return h.ProductSvc.Delete(ctx, id) },
		SuccessMessage:   "Product deleted.",
		FailureMessage:   "Unable to delete product.",
	})
}
