package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/travelease/travel-ease-api/config"
)

// Token issues the short-lived session tokens handed back to a signed-in client
type Token struct {
	Secret string
}

type tokenResponse struct {
	Token string `json:"token"`
}

// CreateTokenHandler signs a one-hour HS256 JWT over the supplied identity payload
func (t Token) CreateTokenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if payload.Email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, fmt.Errorf("missing email"))
		return
	}
	if t.Secret == "" {
		config.ErrorStatus("server misconfigured", http.StatusInternalServerError, w, fmt.Errorf("jwt secret is not set"))
		return
	}

	claims := jwt.MapClaims{
		"email": payload.Email,
		"jti":   uuid.New().String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.Secret))
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tokenResponse{Token: signed})
}
