package service

import (
	"context"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// BrandServiceOptions groups dependencies for BrandService.
type BrandServiceOptions struct {
	Repo ports.BrandRepository
}

// BrandService orchestrates brand CRUD against the backend.
type BrandService struct {
	repo ports.BrandRepository
}

// NewBrandService constructs a new BrandService.
func NewBrandService(opts BrandServiceOptions) *BrandService {
	return &BrandService{repo: opts.Repo}
}

// List returns the full brand collection.
func (s *BrandService) List(ctx context.Context) ([]model.Brand, error) {
	return s.repo.List(ctx)
}

// GetByID finds one brand in the collection.
func (s *BrandService) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(brands, id, func(b model.Brand) string { return b.ID })
}

// Create adds a new brand.
func (s *BrandService) Create(ctx context.Context, req *model.CreateBrandRequest) error {
	return s.repo.Create(ctx, req)
}

// Update patches an existing brand.
func (s *BrandService) Update(ctx context.Context, id string, req *model.UpdateBrandRequest) error {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a brand.
func (s *BrandService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
