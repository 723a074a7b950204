package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/manytooh/catalog-admin/internal/domain/ingredient"
	"github.com/manytooh/catalog-admin/internal/domain/model"
	"github.com/manytooh/catalog-admin/internal/http/validation"
)

// multipartMemoryLimit bounds how much of an upload stays in memory before
// spilling to temp files.
const multipartMemoryLimit = 4 << 20

// productFormData is the working copy of the product form, preserved across
// validation round trips. A re-rendered form never carries the file input
// back; the user reselects the image.
type productFormData struct {
	Name                string
	Barcode             string
	BrandID             string
	CategoryID          string
	TypeID              string
	Warning             string
	UsageDescription    string
	AmountFluoride      string
	Properties          string
	ActiveIngredient    string
	DangerousIngredient string
	IsDangerous         bool

	Image           *model.ImageUpload
	CurrentImageURL string
}

func (f productFormData) fields() model.ProductFields {
	return model.ProductFields{
		BrandID:             f.BrandID,
		CategoryID:          f.CategoryID,
		TypeID:              f.TypeID,
		Name:                f.Name,
		Barcode:             f.Barcode,
		Warning:             f.Warning,
		UsageDescription:    f.UsageDescription,
		AmountFluoride:      f.AmountFluoride,
		Properties:          f.Properties,
		ActiveIngredient:    f.ActiveIngredient,
		DangerousIngredient: f.DangerousIngredient,
		IsDangerous:         f.IsDangerous,
	}
}

func productFormFromModel(p *model.Product) productFormData {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	f := productFormData{
		Name:                p.Name,
		Barcode:             p.Barcode,
		BrandID:             p.BrandID,
		CategoryID:          p.CategoryID,
		TypeID:              p.TypeID,
		Warning:             deref(p.Warning),
		UsageDescription:    deref(p.UsageDescription),
		AmountFluoride:      deref(p.AmountFluoride),
		Properties:          deref(p.Properties),
		ActiveIngredient:    deref(p.ActiveIngredient),
		DangerousIngredient: deref(p.DangerousIngredient),
		IsDangerous:         p.Dangerous(),
	}
	if p.ImageURL != nil {
		f.CurrentImageURL = *p.ImageURL
	}
	return f
}

type productFormService struct {
	svc ProductsService
}

func (s productFormService) Create(ctx context.Context, f productFormData) error {
	return s.svc.Create(ctx, &model.CreateProductRequest{
		ProductFields: f.fields(),
		Image:         f.Image,
	})
}

func (s productFormService) Update(ctx context.Context, id string, f productFormData) error {
	return s.svc.Update(ctx, id, &model.UpdateProductRequest{
		ProductFields: f.fields(),
		Image:         f.Image,
	})
}

func productFormMeta(mode FormMode) PageMeta {
	action := "New"
	if mode == FormModeEdit {
		action = "Edit"
	}
	return PageMeta{
		Title:       "Catalog Admin - " + action + " Product",
		PageTitle:   action + " Product",
		CurrentPage: PageProductForm,
	}
}

func imageCeilingFor(mode FormMode) int {
	if mode == FormModeEdit {
		return model.MaxImageUpdateBytes
	}
	return model.MaxImageCreateBytes
}

// parseProductForm builds the multipart parser for the given mode. The image
// ceiling differs between create and edit.
func parseProductForm(mode FormMode) FormParser[productFormData] {
	maxImage := imageCeilingFor(mode)
	return func(r *http.Request) (productFormData, map[string]string) {
		errs := map[string]string{}
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			errs["_"] = "Invalid form submission."
			return productFormData{}, errs
		}

		get := func(name string) string { return strings.TrimSpace(r.FormValue(name)) }
		data := productFormData{
			Name:                get("product_name"),
			Barcode:             get("barcode"),
			BrandID:             get("brand_id"),
			CategoryID:          get("product_category_id"),
			TypeID:              get("product_type_id"),
			Warning:             get("warning"),
			UsageDescription:    get("usage_description"),
			AmountFluoride:      get("amount_fluoride"),
			Properties:          get("properties"),
			ActiveIngredient:    get("active_ingredient"),
			DangerousIngredient: get("dangerous_ingredient"),
			IsDangerous:         get("is_dangerous") == "true",
			CurrentImageURL:     get("current_image_url"),
		}

		v := validation.New().
			Validate("product_name", data.Name, validation.Required("Product name", 255)).
			Validate("barcode", data.Barcode, validation.Required("Barcode", 255)).
			Validate("brand_id", data.BrandID, validation.Required("Brand", 255)).
			Validate("product_category_id", data.CategoryID, validation.Required("Product category", 255)).
			Validate("product_type_id", data.TypeID, validation.Required("Product type", 255))
		for k, msg := range v.Errors() {
			errs[k] = msg
		}

		img, imgErr := readImageUpload(r, maxImage)
		if imgErr != "" {
			errs["product_image"] = imgErr
		}
		data.Image = img

		if len(errs) == 0 {
			return data, nil
		}
		return data, errs
	}
}

// readImageUpload pulls the optional product image out of the multipart
// body and enforces the size ceiling. Returns a user-facing message on
// failure.
func readImageUpload(r *http.Request, maxBytes int) (*model.ImageUpload, string) {
	file, header, err := r.FormFile("product_image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, ""
	}
	if err != nil {
		return nil, "Unable to read the uploaded image."
	}
	defer file.Close()

	// Read one byte past the ceiling so oversized files are detected
	// without buffering the whole thing.
	data, err := io.ReadAll(io.LimitReader(file, int64(maxBytes)+1))
	if err != nil {
		return nil, "Unable to read the uploaded image."
	}
	if len(data) == 0 {
		return nil, ""
	}
	if len(data) > maxBytes {
		return nil, fmt.Sprintf("Image must be %dMB or smaller.", maxBytes>>20)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "The uploaded file must be an image."
	}

	return &model.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, ""
}

// renderProductForm renders the product form with the select option lists.
// Option fetch failures degrade to an error banner rather than a dead page.
func (h *UIHandlers) renderProductForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, mode := prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: productFormMeta,
	})
	data["BasePath"] = "/products"
	data["MaxImageMB"] = imageCeilingFor(mode) >> 20

	ctx := r.Context()
	if brands, err := h.BrandSvc.List(ctx); err == nil {
		data["Brands"] = brands
	} else {
		markPageError(data)
	}
	if categories, err := h.CategorySvc.List(ctx); err == nil {
		data["Categories"] = categories
	} else {
		markPageError(data)
	}
	if types, err := h.TypeSvc.List(ctx); err == nil {
		data["Types"] = types
	} else {
		markPageError(data)
	}

	h.renderDashboardPage(w, r, data)
}

// ProductNew renders the create form.
func (h *UIHandlers) ProductNew(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, map[string]any{
		"Mode": FormModeCreate,
	})
}

// ProductEdit renders the edit form populated from an existing product.
func (h *UIHandlers) ProductEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" || h.ProductSvc == nil {
		h.NotFound(w, r)
		return
	}
	p, err := h.ProductSvc.GetByID(r.Context(), id)
	if err != nil || p == nil {
		h.NotFound(w, r)
		return
	}
	h.renderProductForm(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"RecordID": p.ID,
		"FormData": productFormFromModel(p),
	})
}

// ProductCreate handles the create form submission.
func (h *UIHandlers) ProductCreate(w http.ResponseWriter, r *http.Request) {
	h.handleProductForm(w, r, FormModeCreate)
}

// ProductUpdate handles the edit form submission.
func (h *UIHandlers) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleProductForm(w, r, FormModeEdit)
}

func (h *UIHandlers) handleProductForm(w http.ResponseWriter, r *http.Request, mode FormMode) {
	verb := "created"
	if mode == FormModeEdit {
		verb = "updated"
	}
	HandleForm(FormHandlerOpts[productFormData]{
		W:            w,
		R:            r,
		Mode:         mode,
		Parser:       parseProductForm(mode),
		Service:      productFormService{svc: h.ProductSvc},
		Renderer:     h.renderProductForm,
		SuccessURL:   "/products",
		SuccessToast: "Product " + verb + ".",
		PageMeta:     productFormMeta(mode),
		ExtraData:    map[string]any{"RecordID": r.PathValue("id")},
	})
}

// ClassifyIngredients serves the live ingredient check on the product form.
// The form posts the active ingredient field as the user types (debounced
// client-side) and swaps in the warning fragment.
func (h *UIHandlers) ClassifyIngredients(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	res := ingredient.Classify(r.Form.Get("active_ingredient"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "ingredient-warnings", map[string]any{
		"Flagged":   res.Flagged(),
		"Dangerous": res.Dangerous,
	}); err != nil {
		h.logAndRenderTemplateError(w, r, err, "ingredient warnings render")
	}
}
