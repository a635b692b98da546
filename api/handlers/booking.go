package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/api"
	"github.com/travelease/travel-ease-api/config"
	"github.com/travelease/travel-ease-api/databases"
	"github.com/travelease/travel-ease-api/models"
	templates "github.com/travelease/travel-ease-api/templates/html"
)

// Booking exported for testing purposes
type Booking struct {
	DB             databases.BookingDatabase
	SendgridAPIKey string
}

// BookingsByUserHandler returns the guarded subject's bookings, newest first.
// The queried email must equal the verified subject identity.
func (b Booking) BookingsByUserHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email := r.URL.Query().Get("email")
	if email != api.SubjectFromContext(r.Context()) {
		config.ErrorStatus("forbidden access", http.StatusForbidden, w, fmt.Errorf("email does not match token"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bookingDate", Value: -1}})
	dbResp, err := b.DB.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		config.ErrorStatus("failed to get bookings", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Booking{}
	}
	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// CreateBookingHandler books a vehicle for the guarded subject. A vehicle can
// be booked at most once per user; the booking date is stamped server-side and
// any client-supplied value is discarded.
func (b Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if booking.VehicleID == "" {
		config.ErrorStatus("vehicleId is required", http.StatusBadRequest, w, fmt.Errorf("missing vehicleId"))
		return
	}
	if booking.UserEmail != api.SubjectFromContext(r.Context()) {
		config.ErrorStatus("forbidden access", http.StatusForbidden, w, fmt.Errorf("userEmail does not match token"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := b.DB.FindOne(ctx, bson.M{"vehicleId": booking.VehicleID, "userEmail": booking.UserEmail})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to look up booking", http.StatusInternalServerError, w, err)
		return
	}
	if existing != nil {
		config.ErrorStatus("you have already booked this vehicle", http.StatusBadRequest, w, fmt.Errorf("duplicate booking"))
		return
	}

	booking.ID = primitive.NewObjectID()
	booking.BookingDate = primitive.NewDateTimeFromTime(time.Now())

	dbResp, err := b.DB.InsertOne(ctx, booking)
	if err != nil {
		config.ErrorStatus("failed to create booking", http.StatusInternalServerError, w, err)
		return
	}

	go b.sendConfirmationEmail(booking)

	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// DeleteBookingHandler deletes a booking owned by the guarded subject
func (b Booking) DeleteBookingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	bookingID := mux.Vars(r)["booking_id"]

	bID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	booking, err := b.DB.FindOne(ctx, bson.M{"_id": bID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("booking not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get booking by ID", http.StatusInternalServerError, w, err)
		return
	}
	if booking.UserEmail != api.SubjectFromContext(r.Context()) {
		config.ErrorStatus("forbidden access", http.StatusForbidden, w, fmt.Errorf("booking belongs to another user"))
		return
	}

	dbResp, err := b.DB.DeleteOne(ctx, bson.M{"_id": bID})
	if err != nil {
		config.ErrorStatus("failed to delete booking", http.StatusInternalServerError, w, err)
		return
	}

	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// sendConfirmationEmail sends a best-effort booking confirmation. Failures are
// logged and never surface to the booking response.
func (b Booking) sendConfirmationEmail(booking models.Booking) {
	if b.SendgridAPIKey == "" {
		zap.S().Debug("sendgrid api key not set, skipping confirmation email")
		return
	}

	from := mail.NewEmail("TravelEase", "no-reply@travel-ease.app")
	to := mail.NewEmail("", booking.UserEmail)
	subject := "Booking Confirmed - TravelEase"
	htmlContent := templates.RenderBookingConfirmationEmail(booking.VehicleName, booking.Location, booking.PricePerDay)
	plainText := fmt.Sprintf("Your booking for %s is confirmed.", booking.VehicleName)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(b.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send booking confirmation email", "error", err, "bookingId", booking.ID.Hex())
		return
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
}
