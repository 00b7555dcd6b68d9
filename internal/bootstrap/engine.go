package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/encounter"
	"github.com/osse101/castline/internal/utils"
)

// NewRNG returns a reproducible source when seed is non-zero, otherwise the shared default
func NewRNG(seed int64) utils.RNG {
	if seed != 0 {
		slog.Info(LogMsgSeededRNG, "seed", seed)
		return utils.NewSeededRNG(seed)
	}
	return utils.DefaultRNG()
}

// NewEncounterService assembles the engine over a loaded catalog. flagship may be nil.
func NewEncounterService(cfg *config.Config, cat *catalog.Catalog, flagship *encounter.FlagshipConfig) (encounter.Service, error) {
	cat.Anomalies = append(cat.Anomalies, flagship.CheckSites(cat.Locations.All())...)

	gen := encounter.NewGenerator(NewRNG(cfg.RNGSeed), encounter.UUIDGenerator{}, nil)

	svc, err := encounter.NewService(cat.Species, cat.Locations, encounter.NewFlagshipGate(flagship, gen), gen, cfg.SummaryCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateService, err)
	}

	slog.Info(LogMsgEncounterEngineReady,
		"species", cat.Species.Count(),
		"locations", cat.Locations.Count(),
		"flagship", flagship != nil)
	return svc, nil
}
