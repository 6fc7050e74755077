package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the operational API.
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrUnknownJob          = "VAL_003"

	// Server errors
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
	ErrAccountNotFound   = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrUnknownJob:          http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrAccountNotFound:     http.StatusNotFound,
}

// APIError is the standard error body of the operational API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
