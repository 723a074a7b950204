package service

import (
	"context"

	"github.com/manytooh/catalog-admin/internal/domain/ingredient"
	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductServiceOptions groups dependencies for ProductService.
type ProductServiceOptions struct {
	Repo ports.ProductRepository
}

// ProductService orchestrates product CRUD against the backend. Writes
// run the ingredient classifier so a denylisted substance can never be
// saved into the active ingredient list, whatever the form submitted.
type ProductService struct {
	repo ports.ProductRepository
}

// NewProductService constructs a new ProductService.
func NewProductService(opts ProductServiceOptions) *ProductService {
	return &ProductService{repo: opts.Repo}
}

// List returns the full product collection.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// GetByID finds one product in the collection.
func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(products, id, func(p model.Product) string { return p.ID })
}

// Create adds a new product.
func (s *ProductService) Create(ctx context.Context, req *model.CreateProductRequest) error {
	classifyIngredients(&req.ProductFields)
	return s.repo.Create(ctx, req)
}

// Update patches an existing product.
func (s *ProductService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) error {
	classifyIngredients(&req.ProductFields)
	return s.repo.Update(ctx, id, req)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// classifyIngredients moves denylisted substances out of the active
// ingredient list and into the dangerous one, flagging the product when
// anything matched.
func classifyIngredients(fields *model.ProductFields) {
	res := ingredient.Classify(fields.ActiveIngredient)
	if !res.Flagged() {
		return
	}
	fields.ActiveIngredient = res.ActiveList()
	fields.DangerousIngredient = ingredient.Merge(fields.DangerousIngredient, res.Dangerous)
	fields.IsDangerous = true
}
