package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/travelease/travel-ease-api/api/handlers"
	"github.com/travelease/travel-ease-api/models"
)

func TestToken_CreateTokenHandlerMissingEmail(t *testing.T) {
	req, err := http.NewRequest("POST", "/getToken", strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}

	tok := handlers.Token{Secret: "test-secret"}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(tok.CreateTokenHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "email is required", Error: "missing email"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), string(b))
	}
}

func TestToken_CreateTokenHandlerMissingSecret(t *testing.T) {
	req, err := http.NewRequest("POST", "/getToken", strings.NewReader(`{"email":"jane@example.com"}`))
	if err != nil {
		t.Fatal(err)
	}

	tok := handlers.Token{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(tok.CreateTokenHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}
}

func TestToken_CreateTokenHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/getToken", strings.NewReader(`{"email":"jane@example.com"}`))
	if err != nil {
		t.Fatal(err)
	}

	tok := handlers.Token{Secret: "test-secret"}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(tok.CreateTokenHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var resp map[string]string
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp["token"])

	// the token must verify with the same secret and carry the email claim
	parsed, err := jwt.Parse(resp["token"], func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])
	assert.NotEmpty(t, claims["exp"])
}
