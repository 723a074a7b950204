// Package model defines the catalog entity types exchanged with the backend API.
package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// maxNameLen is the maximum allowed length for entity names in characters.
	maxNameLen = 255
)

// Brand represents a product brand in the catalog.
type Brand struct {
	ID   string `json:"brand_id"`
	Name string `json:"brand_name"`
}

// CreateBrandRequest represents a request to create a new brand.
type CreateBrandRequest struct {
	Name string `json:"brand_name"`
}

// UpdateBrandRequest represents a request to update an existing brand.
type UpdateBrandRequest struct {
	Name *string `json:"brand_name,omitempty"`
}

// Validate validates the CreateBrandRequest fields.
func (r *CreateBrandRequest) Validate() error {
	return validateEntityName(r.Name)
}

// HasUpdates reports whether any field is set in UpdateBrandRequest.
func (r *UpdateBrandRequest) HasUpdates() bool { return r.Name != nil }

// Validate validates UpdateBrandRequest, ensuring at least one field is set.
func (r *UpdateBrandRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	return validateEntityName(*r.Name)
}

// validateEntityName enforces the shared non-empty and length rules for
// brand, category, and type names.
func validateEntityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	return nil
}
