package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxImageCreateBytes caps the product image upload when creating a product.
	MaxImageCreateBytes = 10 << 20
	// MaxImageUpdateBytes caps the product image upload when editing a product.
	MaxImageUpdateBytes = 5 << 20
)

// Product represents a catalog product. The backend denormalizes the
// related brand, category, and type names onto the record.
//
// IsDangerous is carried as the strings "true"/"false" on the wire.
type Product struct {
	ID                  string     `json:"product_id"`
	BrandID             string     `json:"brand_id"`
	CategoryID          string     `json:"product_category_id"`
	TypeID              string     `json:"product_type_id"`
	BrandName           string     `json:"brand_name"`
	CategoryName        string     `json:"product_category_name"`
	TypeName            string     `json:"product_type_name"`
	Name                string     `json:"product_name"`
	Barcode             string     `json:"barcode"`
	ImageURL            *string    `json:"product_image_url,omitempty"`
	Warning             *string    `json:"warning,omitempty"`
	UsageDescription    *string    `json:"usage_description,omitempty"`
	AmountFluoride      *string    `json:"amount_fluoride,omitempty"`
	Properties          *string    `json:"properties,omitempty"`
	ActiveIngredient    *string    `json:"active_ingredient,omitempty"`
	DangerousIngredient *string    `json:"dangerous_ingredient,omitempty"`
	IsDangerous         string     `json:"is_dangerous"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// Dangerous reports whether the backend flagged the product as containing
// denylisted ingredients.
func (p Product) Dangerous() bool { return p.IsDangerous == "true" }

// ImageUpload carries a product image file received from the form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductFields groups the writable product attributes shared by create
// and update requests. Field names mirror the backend form keys.
type ProductFields struct {
	BrandID             string
	CategoryID          string
	TypeID              string
	Name                string
	Barcode             string
	Warning             string
	UsageDescription    string
	AmountFluoride      string
	Properties          string
	ActiveIngredient    string
	DangerousIngredient string
	IsDangerous         bool
}

// CreateProductRequest represents a request to create a new product.
type CreateProductRequest struct {
	ProductFields
	Image *ImageUpload
}

// UpdateProductRequest represents a request to update an existing product.
// The backend PATCH expects the full writable field set; Image is optional
// and leaves the stored image untouched when nil.
type UpdateProductRequest struct {
	ProductFields
	Image *ImageUpload
}

// Validate validates the CreateProductRequest fields.
func (r *CreateProductRequest) Validate() error {
	if err := r.ProductFields.validate(); err != nil {
		return err
	}
	return validateImage(r.Image, MaxImageCreateBytes)
}

// Validate validates the UpdateProductRequest fields.
func (r *UpdateProductRequest) Validate() error {
	if err := r.ProductFields.validate(); err != nil {
		return err
	}
	return validateImage(r.Image, MaxImageUpdateBytes)
}

func (f *ProductFields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("product_name is required and cannot be empty")
	}
	if strings.TrimSpace(f.Barcode) == "" {
		return errors.New("barcode is required and cannot be empty")
	}
	if strings.TrimSpace(f.BrandID) == "" {
		return errors.New("brand_id is required")
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		return errors.New("product_category_id is required")
	}
	if strings.TrimSpace(f.TypeID) == "" {
		return errors.New("product_type_id is required")
	}
	return nil
}

func validateImage(img *ImageUpload, maxBytes int) error {
	if img == nil {
		return nil
	}
	if len(img.Data) == 0 {
		return errors.New("image file is empty")
	}
	if len(img.Data) > maxBytes {
		return fmt.Errorf("image exceeds the %dMB limit", maxBytes>>20)
	}
	return nil
}
