package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgDatabaseUnavailable   = "database connection failed"

	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	ErrMsgLocationNotFound  = "Location not found"
	ErrMsgSpeciesNotFound   = "Species not found"
	ErrMsgInvalidConditions = "Invalid fishing conditions"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Operation names used in logs
const (
	OpGenerateEncounter  = "Generate encounter"
	OpGetEligibleSpecies = "Get eligible species"
	OpGetLocationSummary = "Get location summary"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgNoEncounter     = "Request produced no encounter"
)

// Query parameter names
const (
	QueryParamTime    = "time"
	QueryParamWeather = "weather"
	QueryParamLevel   = "level"
)

// URL parameter names
const URLParamLocationID = "id"
