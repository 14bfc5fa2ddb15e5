package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderCount(t *testing.T) {
	assert.Equal(t, "0 order", FormatOrderCount(0))
	assert.Equal(t, "1 order", FormatOrderCount(1))
	assert.Equal(t, "2 orders", FormatOrderCount(2))
	assert.Equal(t, "17 orders", FormatOrderCount(17))
}

func TestOrders(t *testing.T) {
	users := newFakeUserRepo()
	user := newTestUser("shopper@example.com")
	user.Orders = 2
	users.put(user)

	svc := NewOrderService(users)

	count, display, svcErr := svc.Orders(context.Background(), "shopper@example.com")
	require.Nil(t, svcErr)
	assert.Equal(t, 2, count)
	assert.Equal(t, "2 orders", display)

	_, _, svcErr = svc.Orders(context.Background(), "ghost@example.com")
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
