package service

import (
	"context"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductTypeServiceOptions groups dependencies for ProductTypeService.
type ProductTypeServiceOptions struct {
	Repo ports.ProductTypeRepository
}

// ProductTypeService orchestrates product type CRUD against the backend.
type ProductTypeService struct {
	repo ports.ProductTypeRepository
}

// NewProductTypeService constructs a new ProductTypeService.
func NewProductTypeService(opts ProductTypeServiceOptions) *ProductTypeService {
	return &ProductTypeService{repo: opts.Repo}
}

// List returns the full product type collection.
func (s *ProductTypeService) List(ctx context.Context) ([]model.ProductType, error) {
	return s.repo.List(ctx)
}

// GetByID finds one product type in the collection.
func (s *ProductTypeService) GetByID(ctx context.Context, id string) (*model.ProductType, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(types, id, func(pt model.ProductType) string { return pt.ID })
}

// Create adds a new product type.
func (s *ProductTypeService) Create(ctx context.Context, req *model.CreateProductTypeRequest) error {
	return s.repo.Create(ctx, req)
}

// Update patches an existing product type.
func (s *ProductTypeService) Update(ctx context.Context, id string, req *model.UpdateProductTypeRequest) error {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a product type.
func (s *ProductTypeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
