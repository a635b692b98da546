package databases

// go generate: mockery --name BookingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelease/travel-ease-api/models"
)

const bookingName = "myBookings"

// BookingDatabase contains the methods to use with the booking database
type BookingDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Booking, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error)
	InsertOne(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	EnsureIndexes(ctx context.Context) error
}

type bookingDatabase struct {
	db DatabaseHelper
}

// NewBookingDatabase initializes a new instance of booking database with the provided db connection
func NewBookingDatabase(db DatabaseHelper) BookingDatabase {
	return &bookingDatabase{
		db: db,
	}
}

func (b *bookingDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Booking, error) {
	booking := &models.Booking{}
	err := b.db.Collection(bookingName).FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (b *bookingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error) {
	var bookings []models.Booking
	err := b.db.Collection(bookingName).Find(ctx, filter, opts...).Decode(&bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingDatabase) InsertOne(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	return b.db.Collection(bookingName).InsertOne(ctx, booking)
}

func (b *bookingDatabase) DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
	return b.db.Collection(bookingName).DeleteOne(ctx, filter)
}

func (b *bookingDatabase) DeleteMany(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
	return b.db.Collection(bookingName).DeleteMany(ctx, filter)
}

// EnsureIndexes creates the unique (vehicleId, userEmail) index that backs the
// one-booking-per-vehicle-per-user invariant. The handler still pre-checks so
// the common duplicate gets a friendly 400; a racing insert that slips past
// the check fails here instead.
func (b *bookingDatabase) EnsureIndexes(ctx context.Context) error {
	unique := true
	_, err := b.db.Collection(bookingName).CreateOneIndex(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "vehicleId", Value: 1}, {Key: "userEmail", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	return err
}
