package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/encounter"
	"github.com/osse101/castline/internal/logger"
)

// GenerateEncounterRequest is the body of POST /api/v1/encounters
type GenerateEncounterRequest struct {
	LocationID     string `json:"location_id" validate:"required,max=64,catalogkey"`
	TimePeriod     string `json:"time_period" validate:"omitempty,max=32,catalogkey"`
	Weather        string `json:"weather" validate:"omitempty,max=32,catalogkey"`
	RequesterLevel int    `json:"requester_level" validate:"min=0,max=10000"`
}

// EncounterResponse wraps a generated encounter. Encounter is null when nothing bites.
type EncounterResponse struct {
	Encounter *domain.Encounter `json:"encounter"`
}

// EligibleSpeciesResponse lists what could appear at a location under the requested conditions
type EligibleSpeciesResponse struct {
	LocationID string            `json:"location_id"`
	Species    []*domain.Species `json:"species"`
}

// EncounterHandler serves the encounter engine over HTTP
type EncounterHandler struct {
	svc encounter.Service
}

// NewEncounterHandler creates a new EncounterHandler
func NewEncounterHandler(svc encounter.Service) *EncounterHandler {
	return &EncounterHandler{svc: svc}
}

// HandleGenerateEncounter runs one encounter roll
func (h *EncounterHandler) HandleGenerateEncounter(w http.ResponseWriter, r *http.Request) {
	var req GenerateEncounterRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpGenerateEncounter); err != nil {
		return
	}

	enc, err := h.svc.GenerateEncounter(r.Context(), req.LocationID, domain.Conditions{
		TimePeriod:     domain.TimePeriod(req.TimePeriod),
		Weather:        domain.Weather(req.Weather),
		RequesterLevel: req.RequesterLevel,
	})
	if err != nil {
		respondServiceError(w, r, OpGenerateEncounter, err)
		return
	}

	if enc == nil {
		logger.FromContext(r.Context()).Debug(LogMsgNoEncounter, "location", req.LocationID)
	}
	respondJSON(w, http.StatusOK, EncounterResponse{Encounter: enc})
}

// HandleGetEligibleSpecies lists eligible species without rolling
func (h *EncounterHandler) HandleGetEligibleSpecies(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, URLParamLocationID)

	cond, ok := conditionsFromQuery(w, r)
	if !ok {
		return
	}

	if _, found := h.svc.GetLocationSummary(r.Context(), locationID); !found {
		respondServiceError(w, r, OpGetEligibleSpecies, domain.ErrLocationNotFound)
		return
	}

	species := h.svc.GetEligibleSpecies(r.Context(), locationID, cond)
	if species == nil {
		species = []*domain.Species{}
	}
	respondJSON(w, http.StatusOK, EligibleSpeciesResponse{LocationID: locationID, Species: species})
}

// HandleGetLocationSummary returns the display aggregate for a location
func (h *EncounterHandler) HandleGetLocationSummary(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, URLParamLocationID)

	summary, found := h.svc.GetLocationSummary(r.Context(), locationID)
	if !found {
		respondServiceError(w, r, OpGetLocationSummary, domain.ErrLocationNotFound)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
