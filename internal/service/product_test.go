package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/manytooh/catalog-admin/internal/domain/model"
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
	"github.com/manytooh/catalog-admin/internal/mocks"
)

func newProductService(t *testing.T) (*mocks.MockProductRepository, *ProductService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	return repo, NewProductService(ProductServiceOptions{Repo: repo})
}

func baseProductFields() model.ProductFields {
	return model.ProductFields{
		BrandID:    "b-1",
		CategoryID: "c-1",
		TypeID:     "t-1",
		Name:       "Whitening Paste",
		Barcode:    "880123456789",
	}
}

func TestProductCreateClassifiesIngredients(t *testing.T) {
	repo, svc := newProductService(t)
	ctx := context.Background()

	var sent *model.CreateProductRequest
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateProductRequest) error {
			sent = req
			return nil
		})

	req := &model.CreateProductRequest{ProductFields: baseProductFields()}
	req.ActiveIngredient = "Aqua, Sodium Benzoate, Xylitol"

	require.NoError(t, svc.Create(ctx, req))
	require.NotNil(t, sent)
	assert.Equal(t, "Aqua, Xylitol", sent.ActiveIngredient)
	assert.Equal(t, "Sodium Benzoate", sent.DangerousIngredient)
	assert.True(t, sent.IsDangerous)
}

func TestProductCreateLeavesSafeListAlone(t *testing.T) {
	repo, svc := newProductService(t)
	ctx := context.Background()

	var sent *model.CreateProductRequest
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateProductRequest) error {
			sent = req
			return nil
		})

	req := &model.CreateProductRequest{ProductFields: baseProductFields()}
	req.ActiveIngredient = "Aqua, Xylitol"

	require.NoError(t, svc.Create(ctx, req))
	assert.Equal(t, "Aqua, Xylitol", sent.ActiveIngredient)
	assert.Empty(t, sent.DangerousIngredient)
	assert.False(t, sent.IsDangerous)
}

func TestProductUpdateMergesDangerousList(t *testing.T) {
	repo, svc := newProductService(t)
	ctx := context.Background()

	var sent *model.UpdateProductRequest
	repo.EXPECT().Update(ctx, "p-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req *model.UpdateProductRequest) error {
			sent = req
			return nil
		})

	req := &model.UpdateProductRequest{ProductFields: baseProductFields()}
	req.ActiveIngredient = "SLS, Aqua"
	req.DangerousIngredient = "Sodium Benzoate"

	require.NoError(t, svc.Update(ctx, "p-1", req))
	assert.Equal(t, "Aqua", sent.ActiveIngredient)
	assert.Equal(t, "Sodium Benzoate, SLS", sent.DangerousIngredient)
	assert.True(t, sent.IsDangerous)
}

func TestProductGetByIDScansList(t *testing.T) {
	repo, svc := newProductService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]model.Product{
		{ID: "p-1", Name: "Paste"},
		{ID: "p-2", Name: "Brush"},
	}, nil).Times(2)

	got, err := svc.GetByID(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, "Brush", got.Name)

	_, err = svc.GetByID(ctx, "p-404")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductDeleteDelegates(t *testing.T) {
	repo, svc := newProductService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "p-1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "p-1"))
}
