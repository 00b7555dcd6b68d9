package encounter

import (
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/metrics"
	"github.com/osse101/castline/internal/utils"
	"github.com/osse101/castline/internal/validation"
)

// FlagshipConfig is the data-driven flagship table
type FlagshipConfig struct {
	Version     string   `json:"version"`
	Probability float64  `json:"probability"`
	Prefixes    []string `json:"prefixes"`

	// Sites maps a designated location id to its template id
	Sites     map[string]string            `json:"sites"`
	Templates map[string]*FlagshipTemplate `json:"templates"`
}

// FlagshipTemplate is the fixed base for one region's flagship encounter
type FlagshipTemplate struct {
	SpeciesID      string  `json:"species_id"`
	BaseName       string  `json:"base_name"`
	BaseSize       float64 `json:"base_size"`
	BaseWeight     float64 `json:"base_weight"`
	BaseCurrency   int     `json:"base_currency"`
	BaseExperience int     `json:"base_experience"`
}

// IsSite reports whether locationID is a designated flagship site
func (c *FlagshipConfig) IsSite(locationID string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Sites[locationID]
	return ok
}

// TemplateFor returns the template registered for a designated site
func (c *FlagshipConfig) TemplateFor(locationID string) (*FlagshipTemplate, bool) {
	if c == nil {
		return nil, false
	}
	templateID, ok := c.Sites[locationID]
	if !ok {
		return nil, false
	}
	tmpl, ok := c.Templates[templateID]
	if !ok || tmpl == nil {
		return nil, false
	}
	return tmpl, true
}

// CheckSites compares the table with the locations' flagship_template fields. Each disagreement is
// logged, counted and returned as a catalog anomaly; the table still decides which sites roll.
func (c *FlagshipConfig) CheckSites(locations []*domain.Location) []catalog.Anomaly {
	if c == nil {
		return nil
	}

	var found []catalog.Anomaly
	known := make(map[string]bool, len(locations))

	for _, loc := range locations {
		known[loc.ID] = true
		templateID := c.Sites[loc.ID]
		if loc.FlagshipTemplate == templateID {
			continue
		}
		logger.Warn(LogMsgFlagshipSiteMismatch,
			LogFieldLocation, loc.ID,
			LogFieldTemplate, templateID,
			LogFieldCatalogTemplate, loc.FlagshipTemplate)
		metrics.DataAnomalies.WithLabelValues(catalog.AnomalyKindLocation, catalog.AnomalyFieldFlagshipTemplate).Inc()
		found = append(found, catalog.Anomaly{
			Kind:  catalog.AnomalyKindLocation,
			ID:    loc.ID,
			Field: catalog.AnomalyFieldFlagshipTemplate,
			Rule:  templateID,
		})
	}

	for _, locationID := range slices.Sorted(maps.Keys(c.Sites)) {
		if known[locationID] {
			continue
		}
		logger.Warn(LogMsgFlagshipSiteUnknown, LogFieldLocation, locationID, LogFieldTemplate, c.Sites[locationID])
		metrics.DataAnomalies.WithLabelValues(catalog.AnomalyKindFlagship, catalog.AnomalyFieldSites).Inc()
		found = append(found, catalog.Anomaly{
			Kind:  catalog.AnomalyKindFlagship,
			ID:    locationID,
			Field: catalog.AnomalyFieldSites,
			Rule:  c.Sites[locationID],
		})
	}

	return found
}

// LoadFlagshipConfig reads the flagship table from path, checking it against the bundled schema when schemas is set
func LoadFlagshipConfig(path string, schemas validation.SchemaValidator) (*FlagshipConfig, error) {
	var cfg FlagshipConfig
	if err := utils.LoadValidatedJSON(path, &cfg, flagshipSchemaCheck(schemas)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadFlagship, err)
	}

	if err := validateFlagshipConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func flagshipSchemaCheck(schemas validation.SchemaValidator) func([]byte) error {
	if schemas == nil {
		return nil
	}
	return func(data []byte) error {
		if err := schemas.ValidateBytes(data, validation.SchemaFlagship); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidFlagship, err)
		}
		return nil
	}
}

// validateFlagshipConfig rejects tables that can never produce a sensible roll.
// A site whose template is missing is allowed; the gate declines at that site.
func validateFlagshipConfig(cfg *FlagshipConfig) error {
	if cfg.Probability < 0 || cfg.Probability > 1 {
		return fmt.Errorf("%w: probability %.4f outside [0, 1]", domain.ErrInvalidFlagship, cfg.Probability)
	}

	if len(cfg.Sites) > 0 && len(cfg.Prefixes) == 0 {
		return fmt.Errorf("%w: no title prefixes defined", domain.ErrInvalidFlagship)
	}

	for id, tmpl := range cfg.Templates {
		if tmpl == nil {
			return fmt.Errorf("%w: template %q is empty", domain.ErrInvalidFlagship, id)
		}
		if tmpl.BaseName == "" {
			return fmt.Errorf("%w: template %q has no base_name", domain.ErrInvalidFlagship, id)
		}
		if tmpl.BaseSize <= 0 || tmpl.BaseWeight <= 0 {
			return fmt.Errorf("%w: template %q needs positive base_size and base_weight", domain.ErrInvalidFlagship, id)
		}
	}

	return nil
}
