package domain

import "time"

// Conditions describe the environment a fishing request is made in
type Conditions struct {
	TimePeriod     TimePeriod `json:"time_period" validate:"omitempty,max=32"`
	Weather        Weather    `json:"weather" validate:"omitempty,max=32"`
	RequesterLevel int        `json:"requester_level" validate:"min=0"`
}

// Encounter is a concrete creature generated for a single request.
// Ownership passes to the caller; the engine keeps no reference.
type Encounter struct {
	InstanceID string `json:"instance_id"`
	SpeciesID  string `json:"species_id"`
	Name       string `json:"name"`

	Size       float64 `json:"size"`
	Weight     float64 `json:"weight"`
	Difficulty float64 `json:"difficulty"`

	CurrencyValue   int `json:"currency_value"`
	ExperienceValue int `json:"experience_value"`

	LocationID  string    `json:"location_id"`
	GeneratedAt time.Time `json:"generated_at"`

	IsFlagship    bool   `json:"is_flagship"`
	FlagshipTitle string `json:"flagship_title,omitempty"`
}
