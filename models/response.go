package models

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is written by the log ingestion endpoints
type SuccessResponse struct {
	Success string `json:"success"`
}
