package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// BrandRepo proxies the backend's brand endpoints.
type BrandRepo struct {
	client *Client
}

var _ ports.BrandRepository = (*BrandRepo)(nil)

// NewBrandRepo creates a new BrandRepo.
func NewBrandRepo(client *Client) *BrandRepo {
	return &BrandRepo{client: client}
}

// List fetches the full brand collection.
func (r *BrandRepo) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.client.getJSON(ctx, "/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Create adds a new brand.
func (r *BrandRepo) Create(ctx context.Context, req *model.CreateBrandRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPost, "/brands/add", req)
}

// Update patches an existing brand.
func (r *BrandRepo) Update(ctx context.Context, id string, req *model.UpdateBrandRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.sendJSON(ctx, http.MethodPatch, "/brands/"+url.PathEscape(id), req)
}

// Delete removes a brand.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/brands/"+url.PathEscape(id), "", nil)
}
