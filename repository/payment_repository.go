package repository

import (
	"context"
	"time"

	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdateStatus moves a payment out of pending. Terminal statuses are never
// overwritten.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, sessionID, status string) error {
	filter := bson.M{"session_id": sessionID, "status": models.PaymentStatusPending}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
