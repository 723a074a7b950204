package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/ports"
)

// ProductRepo proxies the backend's product endpoints. Writes always go
// out as multipart form data, matching what the backend's upload
// middleware expects whether or not an image is attached.
type ProductRepo struct {
	client *Client
}

var _ ports.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *Client) *ProductRepo {
	return &ProductRepo{client: client}
}

// List fetches the full product collection.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.client.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create adds a new product.
func (r *ProductRepo) Create(ctx context.Context, req *model.CreateProductRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	body, contentType, err := encodeProductForm(req.ProductFields, req.Image)
	if err != nil {
		return err
	}
	return r.client.send(ctx, http.MethodPost, "/products/add", contentType, body)
}

// Update patches an existing product. The backend expects the complete
// writable field set on every PATCH.
func (r *ProductRepo) Update(ctx context.Context, id string, req *model.UpdateProductRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	body, contentType, err := encodeProductForm(req.ProductFields, req.Image)
	if err != nil {
		return err
	}
	return r.client.send(ctx, http.MethodPatch, "/products/"+url.PathEscape(id), contentType, body)
}

// Delete removes a product.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), "", nil)
}

// encodeProductForm renders the writable fields, and the image when
// present, as a multipart body. Field names mirror the backend contract.
func encodeProductForm(fields model.ProductFields, img *model.ImageUpload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	values := map[string]string{
		"brand_id":             fields.BrandID,
		"product_category_id":  fields.CategoryID,
		"product_type_id":      fields.TypeID,
		"product_name":         fields.Name,
		"barcode":              fields.Barcode,
		"warning":              fields.Warning,
		"usage_description":    fields.UsageDescription,
		"amount_fluoride":      fields.AmountFluoride,
		"properties":           fields.Properties,
		"active_ingredient":    fields.ActiveIngredient,
		"dangerous_ingredient": fields.DangerousIngredient,
		"is_dangerous":         strconv.FormatBool(fields.IsDangerous),
	}
	for name, value := range values {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if img != nil {
		part, err := w.CreateFormFile("product_image", img.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
