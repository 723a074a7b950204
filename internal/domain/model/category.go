package model

import "errors"

// ProductCategory represents a product category in the catalog.
type ProductCategory struct {
	ID   string `json:"product_category_id"`
	Name string `json:"product_category_name"`
}

// CreateProductCategoryRequest represents a request to create a new category.
type CreateProductCategoryRequest struct {
	Name string `json:"product_category_name"`
}

// UpdateProductCategoryRequest represents a request to update an existing category.
type UpdateProductCategoryRequest struct {
	Name *string `json:"product_category_name,omitempty"`
}

// Validate validates the CreateProductCategoryRequest fields.
func (r *CreateProductCategoryRequest) Validate() error {
	return validateEntityName(r.Name)
}

// HasUpdates reports whether any field is set in UpdateProductCategoryRequest.
func (r *UpdateProductCategoryRequest) HasUpdates() bool { return r.Name != nil }

// Validate validates UpdateProductCategoryRequest, ensuring at least one field is set.
func (r *UpdateProductCategoryRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	return validateEntityName(*r.Name)
}
