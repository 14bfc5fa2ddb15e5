package repository

import (
	"context"
	"errors"

	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrVersionConflict is returned when a versioned write matched no document,
// meaning another request updated the user in between.
var ErrVersionConflict = errors.New("user document version conflict")

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// ReplaceCart writes the full cart array guarded by the document version.
// Returns ErrVersionConflict when the version moved underneath the caller.
func (r *UserRepository) ReplaceCart(ctx context.Context, email string, version int64, cart []models.CartLine) error {
	filter := bson.M{"email": email, "version": version}
	update := bson.M{
		"$set": bson.M{"cart": cart},
		"$inc": bson.M{"version": 1},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

// ClearCartAndCountOrder empties the cart and bumps the order counter in a
// single versioned write.
func (r *UserRepository) ClearCartAndCountOrder(ctx context.Context, email string, version int64) error {
	filter := bson.M{"email": email, "version": version}
	update := bson.M{
		"$set": bson.M{"cart": []models.CartLine{}},
		"$inc": bson.M{"orders": 1, "version": 1},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

// AppendAddress pushes one address onto the user's address list. Addresses
// are append-only so this does not need the version guard.
func (r *UserRepository) AppendAddress(ctx context.Context, email string, address models.Address) error {
	filter := bson.M{"email": email}
	update := bson.M{"$push": bson.M{"addresses": address}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
