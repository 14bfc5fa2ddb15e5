package repository

import (
	"context"

	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// FindByProductID looks up by the catalog's numeric id.
func (r *ProductRepository) FindByProductID(ctx context.Context, productID int) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByRef looks up by the Mongo document id referenced from cart lines.
func (r *ProductRepository) FindByRef(ctx context.Context, ref primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": ref}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchByName performs a case-insensitive pattern match against product
// names. This is a linear scan via the Mongo regex filter, not an index.
func (r *ProductRepository) SearchByName(ctx context.Context, query string) ([]*models.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
