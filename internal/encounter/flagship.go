package encounter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/metrics"
	"github.com/osse101/castline/internal/utils"
)

// FlagshipGate rolls for the rare, location-gated flagship encounter
type FlagshipGate struct {
	cfg *FlagshipConfig
	gen *Generator
}

// NewFlagshipGate creates a gate over cfg. A nil cfg designates no sites and a nil gen uses the
// production defaults.
func NewFlagshipGate(cfg *FlagshipConfig, gen *Generator) *FlagshipGate {
	if gen == nil {
		gen = NewGenerator(nil, nil, nil)
	}
	return &FlagshipGate{cfg: cfg, gen: gen}
}

// IsSite reports whether the gate can ever fire at locationID
func (f *FlagshipGate) IsSite(locationID string) bool {
	return f != nil && f.cfg.IsSite(locationID)
}

// TryFlagship rolls the flagship chance at locationID.
// Non-designated locations return false without consuming a random draw.
func (f *FlagshipGate) TryFlagship(locationID string) (*domain.Encounter, bool) {
	if !f.IsSite(locationID) {
		return nil, false
	}

	tmpl, ok := f.cfg.TemplateFor(locationID)
	if !ok {
		logger.Warn(LogMsgFlagshipTemplateMissing, LogFieldLocation, locationID, LogFieldTemplate, f.cfg.Sites[locationID])
		metrics.FlagshipRolls.WithLabelValues(locationID, metrics.FlagshipResultMisconfigured).Inc()
		return nil, false
	}

	rng := f.gen.RNG()
	if rng.Float64() >= f.cfg.Probability {
		metrics.FlagshipRolls.WithLabelValues(locationID, metrics.FlagshipResultMiss).Inc()
		return nil, false
	}
	metrics.FlagshipRolls.WithLabelValues(locationID, metrics.FlagshipResultHit).Inc()

	enc := domain.Encounter{
		SpeciesID:       tmpl.SpeciesID,
		Name:            tmpl.BaseName,
		Size:            tmpl.BaseSize * utils.UniformRange(rng, FlagshipSizeMin, FlagshipSizeMax),
		Weight:          tmpl.BaseWeight * utils.UniformRange(rng, FlagshipWeightMin, FlagshipWeightMax),
		Difficulty:      utils.UniformRange(rng, FlagshipDifficultyMin, FlagshipDifficultyMax),
		CurrencyValue:   tmpl.BaseCurrency * FlagshipCurrencyMult,
		ExperienceValue: tmpl.BaseExperience * FlagshipExperienceMult,
		LocationID:      locationID,
		IsFlagship:      true,
		FlagshipTitle:   f.makeTitle(tmpl.BaseName),
	}
	enc.GeneratedAt = f.gen.clock()
	enc.InstanceID = f.gen.ids.NewID()

	return &enc, true
}

// makeTitle prefixes the title-cased base name. Casers are stateful, so one is made per call.
func (f *FlagshipGate) makeTitle(baseName string) string {
	name := cases.Title(language.English).String(strings.TrimSpace(baseName))
	if len(f.cfg.Prefixes) == 0 {
		return name
	}
	prefix := f.cfg.Prefixes[f.gen.RNG().Intn(len(f.cfg.Prefixes))]
	return prefix + " " + name
}
