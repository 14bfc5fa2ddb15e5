package services

import (
	"context"

	"storefront/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IUserRepository is the persistence contract the services need from the
// user collection.
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	ReplaceCart(ctx context.Context, email string, version int64, cart []models.CartLine) error
	ClearCartAndCountOrder(ctx context.Context, email string, version int64) error
	AppendAddress(ctx context.Context, email string, address models.Address) error
}

type IProductRepository interface {
	FindByProductID(ctx context.Context, productID int) (*models.Product, error)
	FindByRef(ctx context.Context, ref primitive.ObjectID) (*models.Product, error)
	SearchByName(ctx context.Context, query string) ([]*models.Product, error)
}

type IPaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
}
