package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is read-only from this service's perspective; the catalog is
// maintained by a separate process.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID   int                `json:"id" bson:"id"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Colors      []string           `json:"colors" bson:"colors"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	MainImage   string             `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
}
