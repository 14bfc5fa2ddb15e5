package services

import (
	"context"
	"errors"
	"strings"

	"storefront/models"
	"storefront/repository"

	"go.uber.org/zap"
)

// Cart writes race when two requests read the same user document and write
// the whole array back. Every mutation goes through a versioned
// compare-and-swap and retries a bounded number of times on conflict.
const maxCartWriteAttempts = 3

// CartService maintains the per-user cart embedded in the user document:
// add, set-quantity, remove, clear, and expansion against the catalog.
type CartService struct {
	userRepo    IUserRepository
	productRepo IProductRepository
	logger      *zap.Logger
}

func NewCartService(ur IUserRepository, pr IProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		userRepo:    ur,
		productRepo: pr,
		logger:      logger,
	}
}

// CartRow is one display-ready line: the resolved product joined with the
// stored quantity, size and color.
type CartRow struct {
	Product  *models.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
}

// ExpandedCart holds the joined rows plus the derived total.
type ExpandedCart struct {
	Items []CartRow `json:"items"`
	Total float64   `json:"total"`
}

// capitalizeFirstLetter normalizes a color to its stored capitalized form
// ("red", "RED" -> "Red").
func capitalizeFirstLetter(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// AddItem adds a product to the user's cart. A line matching the same
// (product, size, color) has its quantity incremented by qty; otherwise a
// fresh line is appended with quantity 1.
func (s *CartService) AddItem(ctx context.Context, email string, productID int, size, color string, qty int) *ServiceError {
	if qty < 1 {
		qty = 1
	}
	color = capitalizeFirstLetter(color)

	product, err := s.productRepo.FindByProductID(ctx, productID)
	if err != nil {
		return errNotFound("User or product not found")
	}

	return s.mutateCart(ctx, email, func(cart []models.CartLine) ([]models.CartLine, *ServiceError) {
		for i := range cart {
			if cart[i].ProductRef == product.ID && cart[i].Size == size && cart[i].Color == color {
				cart[i].Quantity += qty
				return cart, nil
			}
		}
		cart = append(cart, models.CartLine{
			ProductRef: product.ID,
			Quantity:   1,
			Size:       size,
			Color:      color,
		})
		return cart, nil
	})
}

// SetQuantity overwrites the quantity of the line matching the product.
// Size and color are not part of the match for this operation.
func (s *CartService) SetQuantity(ctx context.Context, email string, productID, newQuantity int) *ServiceError {
	if newQuantity < 1 {
		return errBadRequest("Quantity must be a positive integer")
	}

	product, err := s.productRepo.FindByProductID(ctx, productID)
	if err != nil {
		return errNotFound("Product not found")
	}

	return s.mutateCart(ctx, email, func(cart []models.CartLine) ([]models.CartLine, *ServiceError) {
		for i := range cart {
			if cart[i].ProductRef == product.ID {
				cart[i].Quantity = newQuantity
				return cart, nil
			}
		}
		return nil, errNotFound("Product not found in user cart")
	})
}

// RemoveItem removes the line matching the product, regardless of size and
// color.
func (s *CartService) RemoveItem(ctx context.Context, email string, productID int) *ServiceError {
	product, err := s.productRepo.FindByProductID(ctx, productID)
	if err != nil {
		return errNotFound("Product not found")
	}

	return s.mutateCart(ctx, email, func(cart []models.CartLine) ([]models.CartLine, *ServiceError) {
		for i := range cart {
			if cart[i].ProductRef == product.ID {
				return append(cart[:i], cart[i+1:]...), nil
			}
		}
		return nil, errNotFound("Product not found in the cart")
	})
}

// ClearCart empties the cart and increments the order counter by one. The
// counter is the checkout-completion proxy; no separate order record exists.
func (s *CartService) ClearCart(ctx context.Context, email string) (*models.User, *ServiceError) {
	for attempt := 0; attempt < maxCartWriteAttempts; attempt++ {
		user, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, errNotFound("User not found")
		}

		err = s.userRepo.ClearCartAndCountOrder(ctx, email, user.Version)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			s.logger.Error("Failed to clear cart", zap.Error(err), zap.String("email", email))
			return nil, errInternal("Failed to clear cart")
		}

		user.Cart = []models.CartLine{}
		user.Orders++
		return user, nil
	}
	return nil, errInternal("Failed to clear cart")
}

// GetCart returns the user's raw cart lines.
func (s *CartService) GetCart(ctx context.Context, email string) ([]models.CartLine, *ServiceError) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errNotFound("User not found")
	}
	if user.Cart == nil {
		return []models.CartLine{}, nil
	}
	return user.Cart, nil
}

// ExpandCart joins cart lines against the catalog. Lines whose product no
// longer resolves are dropped from the view; the stored cart is untouched.
func (s *CartService) ExpandCart(ctx context.Context, cart []models.CartLine) (*ExpandedCart, *ServiceError) {
	expanded := &ExpandedCart{Items: []CartRow{}}

	for _, line := range cart {
		product, err := s.productRepo.FindByRef(ctx, line.ProductRef)
		if err != nil {
			continue
		}
		expanded.Items = append(expanded.Items, CartRow{
			Product:  product,
			Quantity: line.Quantity,
			Size:     line.Size,
			Color:    line.Color,
		})
		expanded.Total += product.Price * float64(line.Quantity)
	}

	return expanded, nil
}

// mutateCart runs the read-mutate-write cycle under the version guard.
func (s *CartService) mutateCart(ctx context.Context, email string, mutate func([]models.CartLine) ([]models.CartLine, *ServiceError)) *ServiceError {
	for attempt := 0; attempt < maxCartWriteAttempts; attempt++ {
		user, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return errNotFound("User or product not found")
		}

		cart, svcErr := mutate(user.Cart)
		if svcErr != nil {
			return svcErr
		}

		err = s.userRepo.ReplaceCart(ctx, email, user.Version, cart)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			s.logger.Error("Failed to save cart", zap.Error(err), zap.String("email", email))
			return errInternal("Failed to save cart")
		}
		return nil
	}

	s.logger.Warn("Cart write gave up after repeated version conflicts", zap.String("email", email))
	return errInternal("Failed to save cart")
}
