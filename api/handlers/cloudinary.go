package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/travelease/travel-ease-api/config"
)

// CloudinaryHandler signs direct cover-image uploads so the browser can push
// to Cloudinary without the API secret ever leaving the server
type CloudinaryHandler struct {
	UploadPreset string
	APISecret    string
}

type signatureResponse struct {
	Timestamp    string `json:"timestamp"`
	Signature    string `json:"signature"`
	UploadPreset string `json:"uploadPreset"`
}

// GenerateSignature returns a timestamp, the preset the client must use, and
// the HMAC-SHA1 signature Cloudinary expects for a preset-scoped upload
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if c.APISecret == "" {
		config.ErrorStatus("server misconfigured", http.StatusInternalServerError, w, fmt.Errorf("cloudinary api secret is not set"))
		return
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Cloudinary signs the params ampersand-joined in key=value form
	h := hmac.New(sha1.New, []byte(c.APISecret))
	h.Write([]byte("timestamp=" + timestamp + "&upload_preset=" + c.UploadPreset))

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(signatureResponse{
		Timestamp:    timestamp,
		Signature:    hex.EncodeToString(h.Sum(nil)),
		UploadPreset: c.UploadPreset,
	})
}
