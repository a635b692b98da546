package config

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/travelease/travel-ease-api/models"
)

// Config holds the project config values
type Config struct {
	Url                string
	DatabaseName       string
	BaseUrl            string
	Port               string
	JWTSecret          string
	FirebaseServiceKey string
	SendgridAPIKey     string

	// Cloudinary direct-upload signing
	CloudinaryUploadPreset string
	CloudinaryAPISecret    string
}

// New sets up all config related services
func New() *Config {

	// load .env if present, real env vars win
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Url:                os.Getenv("DB_URI"),
		DatabaseName:       os.Getenv("DB_NAME"),
		BaseUrl:            os.Getenv("BASE_URL"),
		Port:               os.Getenv("PORT"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		FirebaseServiceKey: os.Getenv("FIREBASE_SERVICE_KEY"),
		SendgridAPIKey:     os.Getenv("SENDGRID_API_KEY"),

		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
	}

}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
