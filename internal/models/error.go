package models

import "time"

// ErrorResponse is the error body returned by every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Client-safe message
	// example: Username already exists
	Message string `json:"message"`

	// Status code with its label
	// example: 409 CONFLICT
	Status string `json:"status"`

	// Moment the error was produced
	// example: 2024-07-18T01:32:29Z
	Instant time.Time `json:"instant"`
}
