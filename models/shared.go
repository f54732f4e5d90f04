package models

// ErrorResponse is the backend's standard error payload.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
