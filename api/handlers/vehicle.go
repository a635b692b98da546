package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/api"
	"github.com/travelease/travel-ease-api/config"
	"github.com/travelease/travel-ease-api/databases"
	"github.com/travelease/travel-ease-api/models"
)

// latestVehicleLimit caps the /latest-vehicles response
const latestVehicleLimit = 6

// Vehicle exported for testing purposes
type Vehicle struct {
	DB databases.VehicleDatabase
}

// VehicleHandler returns all vehicles, optionally filtered by owner email
func (v Vehicle) VehicleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email := r.URL.Query().Get("email")

	filter := bson.M{}
	if email != "" {
		filter = bson.M{"userEmail": email}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Vehicle{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LatestVehiclesHandler returns the 6 most recently created vehicles
func (v Vehicle) LatestVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(latestVehicleLimit)

	dbResp, err := v.DB.Find(ctx, bson.M{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get latest vehicles", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Vehicle{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VehicleByIDHandler returns a vehicle by ID
func (v Vehicle) VehicleByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vehicleID := mux.Vars(r)["vehicle_id"]

	zap.S().Debugf("vehicle_id: %v", vehicleID)

	vID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("vehicle not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get vehicle by ID", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateVehicleHandler creates a vehicle listing
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if vehicle.VehicleName == "" || vehicle.UserEmail == "" {
		config.ErrorStatus("vehicleName and userEmail are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.InsertOne(ctx, vehicle)
	if err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateVehicleHandler replaces the mutable fields of a listing. Only the
// matching owner may update; _id, createdAt, and the stored owner email are
// never touched by this path.
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vehicleID := mux.Vars(r)["vehicle_id"]

	vID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusInternalServerError, w, err)
		return
	}

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := v.DB.FindOne(ctx, bson.M{"_id": vID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("vehicle not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get vehicle by ID", http.StatusInternalServerError, w, err)
		return
	}

	if existing.UserEmail != vehicle.UserEmail {
		config.ErrorStatus("unauthorized update", http.StatusForbidden, w, fmt.Errorf("owner email mismatch"))
		return
	}

	update := bson.M{
		"$set": bson.M{
			"vehicleName":  vehicle.VehicleName,
			"owner":        vehicle.Owner,
			"categories":   vehicle.Categories,
			"pricePerDay":  vehicle.PricePerDay,
			"location":     vehicle.Location,
			"availability": vehicle.Availability,
			"description":  vehicle.Description,
			"coverImage":   vehicle.CoverImage,
		},
	}

	dbResp, err := v.DB.UpdateOne(ctx, bson.M{"_id": vID}, update)
	if err != nil {
		config.ErrorStatus("failed to update vehicle", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteVehicleHandler deletes a vehicle by ID
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vehicleID := mux.Vars(r)["vehicle_id"]

	vID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.DeleteOne(ctx, bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to delete vehicle", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
