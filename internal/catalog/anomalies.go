package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/metrics"
)

// Anomaly describes one catalog field that is missing or out of range.
// Anomalies never block loading; the engine treats the value as zero or neutral.
type Anomaly struct {
	Kind  string
	ID    string
	Field string
	Rule  string
}

var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New()
	// Report json names so anomalies match the catalog files
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// reportAnomalies checks every definition, logs and counts each anomaly, and keeps them on the catalog
func (c *Catalog) reportAnomalies() {
	var found []Anomaly

	for _, sp := range c.Species.All() {
		found = append(found, structAnomalies(AnomalyKindSpecies, sp.ID, sp)...)
	}

	for _, loc := range c.Locations.All() {
		found = append(found, structAnomalies(AnomalyKindLocation, loc.ID, loc)...)
		for _, speciesID := range loc.Population {
			if _, ok := c.Species.Get(speciesID); !ok {
				logger.Warn(LogMsgUnknownPopulationRef, LogFieldLocation, loc.ID, LogFieldSpecies, speciesID)
				found = append(found, Anomaly{Kind: AnomalyKindLocation, ID: loc.ID, Field: AnomalyFieldPopulation, Rule: speciesID})
				metrics.DataAnomalies.WithLabelValues(AnomalyKindLocation, AnomalyFieldPopulation).Inc()
			}
		}
	}

	c.Anomalies = found
}

func structAnomalies(kind, id string, def interface{}) []Anomaly {
	err := fieldValidator.Struct(def)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		logger.Warn(LogMsgDataAnomaly, LogFieldKind, kind, LogFieldID, id, "error", err)
		return []Anomaly{{Kind: kind, ID: id, Rule: err.Error()}}
	}

	out := make([]Anomaly, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		a := Anomaly{Kind: kind, ID: id, Field: fe.Field(), Rule: fe.Tag()}
		logger.Warn(LogMsgDataAnomaly, LogFieldKind, kind, LogFieldID, id, LogFieldField, a.Field, LogFieldRule, a.Rule)
		metrics.DataAnomalies.WithLabelValues(kind, a.Field).Inc()
		out = append(out, a)
	}
	return out
}
