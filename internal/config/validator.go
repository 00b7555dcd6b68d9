package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges and the settings the chosen catalog source needs
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.SpeciesCatalogPath == "" || c.LocationCatalogPath == "" {
			problems = append(problems, "SPECIES_CATALOG_PATH and LOCATION_CATALOG_PATH must be set for the file catalog source")
		}
	case CatalogSourcePostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			problems = append(problems, "DB_HOST, DB_NAME and DB_USER must be set for the postgres catalog source")
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	default:
		problems = append(problems, fmt.Sprintf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceFile, CatalogSourcePostgres, c.CatalogSource))
	}

	if c.HasFlagshipOverride() && c.FlagshipProbability > 1 {
		problems = append(problems, fmt.Sprintf("FLAGSHIP_PROBABILITY must be within [0, 1], got %g", c.FlagshipProbability))
	}

	if c.SummaryCacheSize < 1 {
		problems = append(problems, "SUMMARY_CACHE_SIZE must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateWithWarnings validates and returns warnings for settings that work but are likely mistakes
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.CatalogSource == CatalogSourcePostgres && c.DBPassword == "postgres" && c.Environment == "production" {
		warnings = append(warnings, "DB_PASSWORD is the default value in production")
	}

	if c.APIKey == "" && c.Environment == "production" {
		warnings = append(warnings, "API_KEY is empty in production; the API is unauthenticated")
	}

	if c.RNGSeed != 0 && c.Environment == "production" {
		warnings = append(warnings, "RNG_SEED is fixed in production; encounters will repeat across restarts")
	}

	return warnings, nil
}
