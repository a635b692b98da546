package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Vehicle holds the structure for the vehicles collection in mongo.
// UserEmail is the listing owner's identity and is the field compared
// against the request before any mutation.
type Vehicle struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VehicleName  string             `json:"vehicleName" bson:"vehicleName"`
	Owner        string             `json:"owner" bson:"owner"`
	UserEmail    string             `json:"userEmail" bson:"userEmail"`
	Categories   []string           `json:"categories" bson:"categories"`
	PricePerDay  float64            `json:"pricePerDay" bson:"pricePerDay"`
	Location     string             `json:"location" bson:"location"`
	Availability string             `json:"availability" bson:"availability"`
	Description  string             `json:"description" bson:"description"`
	CoverImage   string             `json:"coverImage" bson:"coverImage"`
	CreatedAt    interface{}        `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
