package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine is one entry in a user's cart. At most one line exists per
// (product, size, color) triple; duplicate adds increment Quantity.
type CartLine struct {
	ProductRef primitive.ObjectID `json:"product" bson:"product"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	Size       string             `json:"size" bson:"size"`
	Color      string             `json:"color" bson:"color"`
}

// Address is an append-only shipping record on the user document.
type Address struct {
	FirstName      string `json:"first_name" bson:"first_name"`
	LastName       string `json:"last_name" bson:"last_name"`
	Country        string `json:"country" bson:"country"`
	StreetAddress1 string `json:"street_address_1" bson:"street_address_1"`
	StreetAddress2 string `json:"street_address_2,omitempty" bson:"street_address_2,omitempty"`
	TownCity       string `json:"town_city" bson:"town_city"`
	PhoneNumber    string `json:"phone_number" bson:"phone_number"`
	Email          string `json:"email" bson:"email"`
}

// User embeds the cart, the address book and the order counter. The whole
// document is the unit of consistency; Version guards cart writes against
// concurrent clobbering.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Cart      []CartLine         `json:"cart" bson:"cart"`
	Addresses []Address          `json:"addresses" bson:"addresses"`
	Orders    int                `json:"orders" bson:"orders"`
	Version   int64              `json:"-" bson:"version"`
}
