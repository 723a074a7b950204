package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductTypeRepo proxies the backend's product type endpoints.
type ProductTypeRepo struct {
	client *Client
}

var _ ports.ProductTypeRepository = (*ProductTypeRepo)(nil)

// NewProductTypeRepo creates a new ProductTypeRepo.
func NewProductTypeRepo(client *Client) *ProductTypeRepo {
	return &ProductTypeRepo{client: client}
}

// List fetches the full product type collection.
func (r *ProductTypeRepo) List(ctx context.Context) ([]model.ProductType, error) {
	var types []model.ProductType
	if err := r.client.getJSON(ctx, "/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Create adds a new product type.
func (r *ProductTypeRepo) Create(ctx context.Context, req *model.CreateProductTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPost, "/types/add", req)
}

// Update patches an existing product type.
func (r *ProductTypeRepo) Update(ctx context.Context, id string, req *model.UpdateProductTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPatch, "/types/"+url.PathEscape(id), req)
}

// Delete removes a product type.
func (r *ProductTypeRepo) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/types/"+url.PathEscape(id), "", nil)
}
