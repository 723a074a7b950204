package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manytooh/catalog-admin/internal/domain/model"
)

func productFields() model.ProductFields {
	return model.ProductFields{
		BrandID:          "b-1",
		CategoryID:       "c-1",
		TypeID:           "t-1",
		Name:             "Whitening Paste",
		Barcode:          "880123456789",
		ActiveIngredient: "Fluoride, Xylitol",
		IsDangerous:      false,
	}
}

func TestProductRepoCreateSendsMultipart(t *testing.T) {
	var (
		gotPath   string
		gotFields map[string]string
		gotFile   string
	)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, r.ParseMultipartForm(16<<20))

		gotFields = make(map[string]string)
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		if files := r.MultipartForm.File["product_image"]; len(files) > 0 {
			gotFile = files[0].Filename
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	repo := NewProductRepo(client)
	req := &model.CreateProductRequest{
		ProductFields: productFields(),
		Image:         &model.ImageUpload{Filename: "box.png", ContentType: "image/png", Data: []byte{1, 2, 3}},
	}
	require.NoError(t, repo.Create(context.Background(), req))

	assert.Equal(t, "POST /api/v1/products/add", gotPath)
	assert.Equal(t, "Whitening Paste", gotFields["product_name"])
	assert.Equal(t, "880123456789", gotFields["barcode"])
	assert.Equal(t, "false", gotFields["is_dangerous"])
	assert.Equal(t, "Fluoride, Xylitol", gotFields["active_ingredient"])
	assert.Equal(t, "box.png", gotFile)
}

func TestProductRepoUpdateWithoutImage(t *testing.T) {
	var gotPath, gotFile string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, r.ParseMultipartForm(16<<20))
		if files := r.MultipartForm.File["product_image"]; len(files) > 0 {
			gotFile = files[0].Filename
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	repo := NewProductRepo(client)
	req := &model.UpdateProductRequest{ProductFields: productFields()}
	require.NoError(t, repo.Update(context.Background(), "p-9", req))

	assert.Equal(t, "PATCH /api/v1/products/p-9", gotPath)
	assert.Empty(t, gotFile)
}

func TestProductRepoCreateRejectsInvalidRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the backend")
	}))

	repo := NewProductRepo(client)
	req := &model.CreateProductRequest{} // missing everything
	assert.Error(t, repo.Create(context.Background(), req))
}

func TestProductRepoList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"product_id":"p-1","product_name":"Paste","barcode":"1","brand_id":"b-1",
			 "product_category_id":"c-1","product_type_id":"t-1","is_dangerous":"false"}
		]`))
	}))

	repo := NewProductRepo(client)
	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].ID)
	assert.False(t, products[0].Dangerous())
}

func TestBrandRepoEndpoints(t *testing.T) {
	var got []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))

	repo := NewBrandRepo(client)
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &model.CreateBrandRequest{Name: "Colgate"}))

	name := "Elmex"
	require.NoError(t, repo.Update(ctx, "b-2", &model.UpdateBrandRequest{Name: &name}))
	require.NoError(t, repo.Delete(ctx, "b-2"))

	assert.Equal(t, []string{
		"GET /api/v1/brands",
		"POST /api/v1/brands/add",
		"PATCH /api/v1/brands/b-2",
		"DELETE /api/v1/brands/b-2",
	}, got)
}
