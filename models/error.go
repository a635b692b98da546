package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError `json:"response"`
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the plain message body used by no-op and status replies
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse is returned by the health endpoints
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
