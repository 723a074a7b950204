package ports

import (
	"context"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

// Catalog repositories are thin proxies over the backend REST API. Lists
// always return the full collection; the dashboard filters, sorts, and
// pages in memory. Writes return no record: the UI refetches the list
// after a successful create or update, so echoing the mutated row back
// would only invite drift from what the backend actually stored.

// BrandRepository proxies the backend's brand endpoints.
type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	Create(ctx context.Context, req *model.CreateBrandRequest) error
	Update(ctx context.Context, id string, req *model.UpdateBrandRequest) error
	Delete(ctx context.Context, id string) error
}

// ProductCategoryRepository proxies the backend's category endpoints.
type ProductCategoryRepository interface {
	List(ctx context.Context) ([]model.ProductCategory, error)
	Create(ctx context.Context, req *model.CreateProductCategoryRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductCategoryRequest) error
	Delete(ctx context.Context, id string) error
}

// ProductTypeRepository proxies the backend's type endpoints.
type ProductTypeRepository interface {
	List(ctx context.Context) ([]model.ProductType, error)
	Create(ctx context.Context, req *model.CreateProductTypeRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductTypeRequest) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository proxies the backend's product endpoints. Create and
// Update post multipart form data when an image upload is present.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, req *model.CreateProductRequest) error
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}
