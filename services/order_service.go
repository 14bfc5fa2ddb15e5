package services

import (
	"context"
	"fmt"
)

// OrderService exposes the per-user order counter. The counter increments
// when a cart is cleared; there is no separate order record.
type OrderService struct {
	userRepo IUserRepository
}

func NewOrderService(ur IUserRepository) *OrderService {
	return &OrderService{userRepo: ur}
}

// Orders returns the raw count and its pluralized display form
// ("0 order", "1 order", "2 orders").
func (s *OrderService) Orders(ctx context.Context, email string) (int, string, *ServiceError) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, "", errNotFound("User not found")
	}

	return user.Orders, FormatOrderCount(user.Orders), nil
}

// FormatOrderCount pluralizes an order count for display.
func FormatOrderCount(orders int) string {
	if orders == 0 || orders == 1 {
		return fmt.Sprintf("%d order", orders)
	}
	return fmt.Sprintf("%d orders", orders)
}
