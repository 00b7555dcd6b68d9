package catalog

import (
	"fmt"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/utils"
	"github.com/osse101/castline/internal/validation"
)

// SpeciesFile is the on-disk layout of the species catalog
type SpeciesFile struct {
	Version string           `json:"version"`
	Species []domain.Species `json:"species"`
}

// LocationsFile is the on-disk layout of the location catalog
type LocationsFile struct {
	Version   string            `json:"version"`
	Locations []domain.Location `json:"locations"`
}

// LoadFiles reads and schema-checks both catalog files and builds the in-memory catalog
func LoadFiles(speciesPath, locationsPath string, schemas validation.SchemaValidator) (*Catalog, error) {
	var sf SpeciesFile
	if err := utils.LoadValidatedJSON(speciesPath, &sf, schemaCheck(schemas, validation.SchemaSpecies)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadSpecies, err)
	}

	var lf LocationsFile
	if err := utils.LoadValidatedJSON(locationsPath, &lf, schemaCheck(schemas, validation.SchemaLocations)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLocations, err)
	}

	c, err := New(sf.Species, lf.Locations)
	if err != nil {
		return nil, err
	}

	logger.Info(LogMsgCatalogLoaded,
		LogFieldSource, "file",
		LogFieldSpeciesN, c.Species.Count(),
		LogFieldLocationN, c.Locations.Count())

	return c, nil
}

func schemaCheck(schemas validation.SchemaValidator, schemaName string) func([]byte) error {
	if schemas == nil {
		return nil
	}
	return func(data []byte) error {
		return schemas.ValidateBytes(data, schemaName)
	}
}
