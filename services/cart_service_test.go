package services

import (
	"context"
	"net/http"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestUser(email string) *models.User {
	return &models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Cart:      []models.CartLine{},
		Addresses: []models.Address{},
	}
}

func newCartFixture(t *testing.T, products ...*models.Product) (*CartService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	users.put(newTestUser("shopper@example.com"))
	svc := NewCartService(users, newFakeProductRepo(products...), zap.NewNop())
	return svc, users
}

func shirt() *models.Product {
	return &models.Product{
		ID:        primitive.NewObjectID(),
		ProductID: 1,
		Name:      "Oxford Shirt",
		Price:     20,
		Colors:    []string{"Red", "Blue"},
		Sizes:     []string{"S", "M", "L"},
	}
}

func TestAddItem_DuplicateAddMergesIntoOneLine(t *testing.T) {
	product := shirt()
	svc, users := newCartFixture(t, product)
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))
	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))

	user, err := users.FindByEmail(ctx, "shopper@example.com")
	require.NoError(t, err)
	require.Len(t, user.Cart, 1)
	assert.Equal(t, 2, user.Cart[0].Quantity)
	assert.Equal(t, product.ID, user.Cart[0].ProductRef)
	assert.Equal(t, "Red", user.Cart[0].Color)
}

func TestAddItem_ColorVariantsStayDistinct(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))
	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "blue", 1))

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	require.Len(t, user.Cart, 2)
	assert.Equal(t, 1, user.Cart[0].Quantity)
	assert.Equal(t, 1, user.Cart[1].Quantity)
}

func TestAddItem_FreshLineStartsAtOneRegardlessOfRequestedQty(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 5))

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	require.Len(t, user.Cart, 1)
	assert.Equal(t, 1, user.Cart[0].Quantity)
}

func TestAddItem_UnknownProductOrUser(t *testing.T) {
	svc, _ := newCartFixture(t, shirt())
	ctx := context.Background()

	svcErr := svc.AddItem(ctx, "shopper@example.com", 99, "M", "red", 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)

	svcErr = svc.AddItem(ctx, "ghost@example.com", 1, "M", "red", 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestSetQuantity_OverwritesMatchingLine(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))
	require.Nil(t, svc.SetQuantity(ctx, "shopper@example.com", 1, 7))

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	assert.Equal(t, 7, user.Cart[0].Quantity)
}

func TestSetQuantity_MissingLineLeavesCartUnchanged(t *testing.T) {
	product := shirt()
	other := &models.Product{ID: primitive.NewObjectID(), ProductID: 2, Name: "Chinos", Price: 35}
	svc, users := newCartFixture(t, product, other)
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))

	svcErr := svc.SetQuantity(ctx, "shopper@example.com", 2, 3)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	require.Len(t, user.Cart, 1)
	assert.Equal(t, 1, user.Cart[0].Quantity)
}

func TestSetQuantity_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))

	for _, qty := range []int{0, -4} {
		svcErr := svc.SetQuantity(ctx, "shopper@example.com", 1, qty)
		require.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	}
}

func TestRemoveItem(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))
	require.Nil(t, svc.RemoveItem(ctx, "shopper@example.com", 1))

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	assert.Empty(t, user.Cart)

	svcErr := svc.RemoveItem(ctx, "shopper@example.com", 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestClearCart_EmptiesCartAndCountsOrder(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))

	cleared, svcErr := svc.ClearCart(ctx, "shopper@example.com")
	require.Nil(t, svcErr)
	assert.Empty(t, cleared.Cart)
	assert.Equal(t, 1, cleared.Orders)

	cleared, svcErr = svc.ClearCart(ctx, "shopper@example.com")
	require.Nil(t, svcErr)
	assert.Equal(t, 2, cleared.Orders)

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	assert.Equal(t, 2, user.Orders)
}

func TestExpandCart_TotalAndDeletedProductOmission(t *testing.T) {
	product := shirt()
	svc, _ := newCartFixture(t, product)
	ctx := context.Background()

	deletedRef := primitive.NewObjectID()
	cart := []models.CartLine{
		{ProductRef: product.ID, Quantity: 3, Size: "M", Color: "Red"},
		{ProductRef: deletedRef, Quantity: 2, Size: "L", Color: "Blue"},
	}

	expanded, svcErr := svc.ExpandCart(ctx, cart)
	require.Nil(t, svcErr)

	// The line referencing a product that no longer resolves is dropped
	// from the view only.
	require.Len(t, expanded.Items, 1)
	assert.Equal(t, "Oxford Shirt", expanded.Items[0].Product.Name)
	assert.Equal(t, 60.0, expanded.Total)
	assert.Len(t, cart, 2)
}

func TestCartWrite_RetriesOnVersionConflict(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	users.conflicts = 2
	require.Nil(t, svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1))

	user, _ := users.FindByEmail(ctx, "shopper@example.com")
	require.Len(t, user.Cart, 1)
}

func TestCartWrite_GivesUpAfterRepeatedConflicts(t *testing.T) {
	svc, users := newCartFixture(t, shirt())
	ctx := context.Background()

	users.conflicts = maxCartWriteAttempts
	svcErr := svc.AddItem(ctx, "shopper@example.com", 1, "M", "red", 1)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestCapitalizeFirstLetter(t *testing.T) {
	assert.Equal(t, "Red", capitalizeFirstLetter("red"))
	assert.Equal(t, "Red", capitalizeFirstLetter("RED"))
	assert.Equal(t, "", capitalizeFirstLetter(""))
}
