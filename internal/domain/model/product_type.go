package model

import "errors"

// ProductType represents a product type in the catalog.
type ProductType struct {
	ID   string `json:"product_type_id"`
	Name string `json:"product_type_name"`
}

// CreateProductTypeRequest represents a request to create a new product type.
type CreateProductTypeRequest struct {
	Name string `json:"product_type_name"`
}

// UpdateProductTypeRequest represents a request to update an existing product type.
type UpdateProductTypeRequest struct {
	Name *string `json:"product_type_name,omitempty"`
}

// Validate validates the CreateProductTypeRequest fields.
func (r *CreateProductTypeRequest) Validate() error {
	return validateEntityName(r.Name)
}

// HasUpdates reports whether any field is set in UpdateProductTypeRequest.
func (r *UpdateProductTypeRequest) HasUpdates() bool { return r.Name != nil }

// Validate validates UpdateProductTypeRequest, ensuring at least one field is set.
func (r *UpdateProductTypeRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	return validateEntityName(*r.Name)
}
