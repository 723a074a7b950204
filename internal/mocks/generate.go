// Package mocks provides mock implementations for testing the catalog admin dashboard.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockBrandRepository(ctrl)
//	mockRepo.EXPECT().List(gomock.Any()).Return(brands, nil)
package mocks

// Generate mock for BrandRepository interface from internal/ports package.
// This creates MockBrandRepository with methods for all BrandRepository interface methods:
// List, Create, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=brand_repository_mock.go github.com/manytooh/catalog-admin/internal/ports BrandRepository

// Generate mock for ProductCategoryRepository interface from internal/ports package.
// This creates MockProductCategoryRepository with methods for all ProductCategoryRepository interface methods:
// List, Create, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=product_category_repository_mock.go github.com/manytooh/catalog-admin/internal/ports ProductCategoryRepository

// Generate mock for ProductTypeRepository interface from internal/ports package.
// This creates MockProductTypeRepository with methods for all ProductTypeRepository interface methods:
// List, Create, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=product_type_repository_mock.go github.com/manytooh/catalog-admin/internal/ports ProductTypeRepository

// Generate mock for ProductRepository interface from internal/ports package.
// This creates MockProductRepository with methods for all ProductRepository interface methods:
// List, Create, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=product_repository_mock.go github.com/manytooh/catalog-admin/internal/ports ProductRepository
