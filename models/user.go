package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User holds the structure for the users collection in mongo. A document is
// written on first sign-in and never updated or deleted through this API.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	PhotoURL  string             `json:"photoURL" bson:"photoURL"`
	CreatedAt interface{}        `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
