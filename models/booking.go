package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking holds the structure for the myBookings collection in mongo.
// BookingDate is stamped by the server at insert time; a client-supplied
// value is discarded. The vehicle fields are denormalized from the listing
// at booking time so the bookings page renders without a second lookup.
type Booking struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VehicleID   string             `json:"vehicleId" bson:"vehicleId"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	VehicleName string             `json:"vehicleName,omitempty" bson:"vehicleName,omitempty"`
	CoverImage  string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	PricePerDay float64            `json:"pricePerDay,omitempty" bson:"pricePerDay,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	BookingDate interface{}        `json:"bookingDate,omitempty" bson:"bookingDate,omitempty"`
}
