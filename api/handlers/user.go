package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelease/travel-ease-api/api"
	"github.com/travelease/travel-ease-api/config"
	"github.com/travelease/travel-ease-api/databases"
	"github.com/travelease/travel-ease-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UserCreateHandler stores a user on first sign-in. Creation is idempotent by
// email: a repeat call for a stored email inserts nothing and returns a no-op
// message instead.
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if user.Email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, fmt.Errorf("missing email"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := u.DB.FindOne(ctx, bson.M{"email": user.Email})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to look up user", http.StatusInternalServerError, w, err)
		return
	}
	if existing != nil {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "User already exists. Do not need to insert again."})
		return
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	dbResp, err := u.DB.InsertOne(ctx, user)
	if err != nil {
		config.ErrorStatus("failed to insert user", http.StatusInternalServerError, w, err)
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
