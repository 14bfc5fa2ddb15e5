package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogGetByID(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(shirt()), nil, zap.NewNop())
	ctx := context.Background()

	product, svcErr := svc.GetByID(ctx, 1)
	require.Nil(t, svcErr)
	assert.Equal(t, "Oxford Shirt", product.Name)

	_, svcErr = svc.GetByID(ctx, 404)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCatalogSearchNeverReturnsNil(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), nil, zap.NewNop())

	products, svcErr := svc.Search(context.Background(), "shirt")
	require.Nil(t, svcErr)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
