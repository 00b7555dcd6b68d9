package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// conditionsFromQuery reads time, weather and level query parameters.
// If ok is false, the response has already been written.
func conditionsFromQuery(w http.ResponseWriter, r *http.Request) (domain.Conditions, bool) {
	cond := domain.Conditions{
		TimePeriod: domain.TimePeriod(GetOptionalQueryParam(r, QueryParamTime, "")),
		Weather:    domain.Weather(GetOptionalQueryParam(r, QueryParamWeather, "")),
	}

	if raw := GetOptionalQueryParam(r, QueryParamLevel, ""); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil || level < 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamLevel))
			return domain.Conditions{}, false
		}
		cond.RequesterLevel = level
	}

	return cond, true
}
