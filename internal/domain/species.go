package domain

// TimePeriod is the part of the day a species is active in or a request is made in.
type TimePeriod string

// Time periods understood by the bundled catalogs.
const (
	TimeDawn  TimePeriod = "dawn"
	TimeDay   TimePeriod = "day"
	TimeDusk  TimePeriod = "dusk"
	TimeNight TimePeriod = "night"
)

// Weather is the weather condition a species prefers or a request is made in.
type Weather string

// Weather conditions understood by the bundled catalogs.
const (
	WeatherAny    Weather = "any"
	WeatherClear  Weather = "clear"
	WeatherCloudy Weather = "cloudy"
	WeatherRain   Weather = "rain"
	WeatherStorm  Weather = "storm"
	WeatherFog    Weather = "fog"
	WeatherSnow   Weather = "snow"
)

// Rarity tier bounds
const (
	MinRarity = 1
	MaxRarity = 10
)

// Species is the catalog definition of a creature that can be encountered.
// Species are loaded once at startup and must be treated as read-only.
type Species struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`

	// Rarity is the tier from 1 (common) to 10 (rarest)
	Rarity int `json:"rarity" validate:"required,min=1,max=10"`

	BaseSize   float64 `json:"base_size" validate:"required,gt=0"`
	BaseWeight float64 `json:"base_weight" validate:"required,gt=0"`

	// ActivePeriods empty means the species is active at any time
	ActivePeriods []TimePeriod `json:"active_periods,omitempty"`
	// PreferredWeather empty (or containing "any") means any weather
	PreferredWeather []Weather `json:"preferred_weather,omitempty"`

	Habitat string `json:"habitat,omitempty"`

	Aggressiveness int `json:"aggressiveness" validate:"min=0"`
	Elusiveness    int `json:"elusiveness" validate:"min=0"`
	Strength       int `json:"strength" validate:"min=0"`

	BaseCurrency   int `json:"base_currency" validate:"required,min=0"`
	BaseExperience int `json:"base_experience" validate:"required,min=0"`
}

// IsUnrestrictedTime reports whether the species may appear in any time period
func (s *Species) IsUnrestrictedTime() bool {
	return len(s.ActivePeriods) == 0
}

// IsActiveDuring reports whether the species is active in the given period.
// A species with no active periods is active at all times.
func (s *Species) IsActiveDuring(period TimePeriod) bool {
	if s.IsUnrestrictedTime() {
		return true
	}
	for _, p := range s.ActivePeriods {
		if p == period {
			return true
		}
	}
	return false
}

// IsAnyWeather reports whether the species has no weather preference
func (s *Species) IsAnyWeather() bool {
	if len(s.PreferredWeather) == 0 {
		return true
	}
	for _, w := range s.PreferredWeather {
		if w == WeatherAny {
			return true
		}
	}
	return false
}

// PrefersWeather reports whether the species accepts the given weather.
func (s *Species) PrefersWeather(weather Weather) bool {
	if s.IsAnyWeather() {
		return true
	}
	for _, w := range s.PreferredWeather {
		if w == weather {
			return true
		}
	}
	return false
}
