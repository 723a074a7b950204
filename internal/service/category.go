package service

import (
	"context"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductCategoryServiceOptions groups dependencies for ProductCategoryService.
type ProductCategoryServiceOptions struct {
	Repo ports.ProductCategoryRepository
}

// ProductCategoryService orchestrates category CRUD against the backend.
type ProductCategoryService struct {
	repo ports.ProductCategoryRepository
}

// NewProductCategoryService constructs a new ProductCategoryService.
func NewProductCategoryService(opts ProductCategoryServiceOptions) *ProductCategoryService {
	return &ProductCategoryService{repo: opts.Repo}
}

// List returns the full category collection.
func (s *ProductCategoryService) List(ctx context.Context) ([]model.ProductCategory, error) {
	return s.repo.List(ctx)
}

// GetByID finds one category in the collection.
func (s *ProductCategoryService) GetByID(ctx context.Context, id string) (*model.ProductCategory, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(categories, id, func(c model.ProductCategory) string { return c.ID })
}

// Create adds a new category.
func (s *ProductCategoryService) Create(ctx context.Context, req *model.CreateProductCategoryRequest) error {
	return s.repo.Create(ctx, req)
}

// Update patches an existing category.
func (s *ProductCategoryService) Update(ctx context.Context, id string, req *model.UpdateProductCategoryRequest) error {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a category.
func (s *ProductCategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
