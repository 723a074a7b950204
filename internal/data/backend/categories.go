package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductCategoryRepo proxies the backend's category endpoints.
type ProductCategoryRepo struct {
	client *Client
}

var _ ports.ProductCategoryRepository = (*ProductCategoryRepo)(nil)

// NewProductCategoryRepo creates a new ProductCategoryRepo.
func NewProductCategoryRepo(client *Client) *ProductCategoryRepo {
	return &ProductCategoryRepo{client: client}
}

// List fetches the full category collection.
func (r *ProductCategoryRepo) List(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.client.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create adds a new category.
func (r *ProductCategoryRepo) Create(ctx context.Context, req *model.CreateProductCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPost, "/categories/add", req)
}

// Update patches an existing category.
func (r *ProductCategoryRepo) Update(ctx context.Context, id string, req *model.UpdateProductCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id), req)
}

// Delete removes a category.
func (r *ProductCategoryRepo) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), "", nil)
}
