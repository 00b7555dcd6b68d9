package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
)

// Missing numeric columns are read as zero; the catalog reports them as anomalies.
const (
	queryAllSpecies = `
		SELECT species_id, name, description,
		       COALESCE(rarity, 0), COALESCE(base_size, 0), COALESCE(base_weight, 0),
		       active_periods, preferred_weather, habitat,
		       COALESCE(aggressiveness, 0), COALESCE(elusiveness, 0), COALESCE(strength, 0),
		       COALESCE(base_currency, 0), COALESCE(base_experience, 0)
		FROM species
		ORDER BY load_order`

	queryAllLocations = `
		SELECT location_id, name, population, rarity_modifiers,
		       COALESCE(line_strength, 0), COALESCE(cast_distance, 0),
		       unlock_level, flagship_template
		FROM locations
		ORDER BY load_order`

	upsertSpecies = `
		INSERT INTO species (species_id, name, description, rarity, base_size, base_weight,
		                     active_periods, preferred_weather, habitat,
		                     aggressiveness, elusiveness, strength, base_currency, base_experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (species_id) DO UPDATE SET
		    name = EXCLUDED.name, description = EXCLUDED.description, rarity = EXCLUDED.rarity,
		    base_size = EXCLUDED.base_size, base_weight = EXCLUDED.base_weight,
		    active_periods = EXCLUDED.active_periods, preferred_weather = EXCLUDED.preferred_weather,
		    habitat = EXCLUDED.habitat, aggressiveness = EXCLUDED.aggressiveness,
		    elusiveness = EXCLUDED.elusiveness, strength = EXCLUDED.strength,
		    base_currency = EXCLUDED.base_currency, base_experience = EXCLUDED.base_experience`

	upsertLocation = `
		INSERT INTO locations (location_id, name, population, rarity_modifiers,
		                       line_strength, cast_distance, unlock_level, flagship_template)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (location_id) DO UPDATE SET
		    name = EXCLUDED.name, population = EXCLUDED.population,
		    rarity_modifiers = EXCLUDED.rarity_modifiers,
		    line_strength = EXCLUDED.line_strength, cast_distance = EXCLUDED.cast_distance,
		    unlock_level = EXCLUDED.unlock_level, flagship_template = EXCLUDED.flagship_template`
)

// CatalogRepository reads and writes the species and location catalogs in PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// LoadCatalog reads both tables and builds the in-memory catalog
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	species, err := r.GetAllSpecies(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := r.GetAllLocations(ctx)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(species, locations)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(catalog.LogMsgCatalogLoaded,
		catalog.LogFieldSource, "postgres",
		catalog.LogFieldSpeciesN, c.Species.Count(),
		catalog.LogFieldLocationN, c.Locations.Count())

	return c, nil
}

// GetAllSpecies returns every species row in insertion order
func (r *CatalogRepository) GetAllSpecies(ctx context.Context) ([]domain.Species, error) {
	rows, err := r.pool.Query(ctx, queryAllSpecies)
	if err != nil {
		return nil, fmt.Errorf("failed to query species: %w", err)
	}
	defer rows.Close()

	var out []domain.Species
	for rows.Next() {
		var (
			sp               domain.Species
			periods, weather []string
		)
		if err := rows.Scan(
			&sp.ID, &sp.Name, &sp.Description,
			&sp.Rarity, &sp.BaseSize, &sp.BaseWeight,
			&periods, &weather, &sp.Habitat,
			&sp.Aggressiveness, &sp.Elusiveness, &sp.Strength,
			&sp.BaseCurrency, &sp.BaseExperience,
		); err != nil {
			return nil, fmt.Errorf("failed to scan species: %w", err)
		}
		sp.ActivePeriods = toTimePeriods(periods)
		sp.PreferredWeather = toWeather(weather)
		out = append(out, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate species: %w", err)
	}
	return out, nil
}

// GetAllLocations returns every location row in insertion order
func (r *CatalogRepository) GetAllLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.pool.Query(ctx, queryAllLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		var (
			loc       domain.Location
			modifiers []byte
		)
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Population, &modifiers,
			&loc.Modifiers.LineStrength, &loc.Modifiers.CastDistance,
			&loc.UnlockLevel, &loc.FlagshipTemplate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		if len(modifiers) > 0 {
			if err := json.Unmarshal(modifiers, &loc.RarityModifiers); err != nil {
				return nil, fmt.Errorf("failed to decode rarity modifiers for %s: %w", loc.ID, err)
			}
		}
		if len(loc.RarityModifiers) == 0 {
			loc.RarityModifiers = nil
		}
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return out, nil
}

// SaveCatalog upserts the given definitions in a single transaction
func (r *CatalogRepository) SaveCatalog(ctx context.Context, species []domain.Species, locations []domain.Location) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for i := range species {
			sp := &species[i]
			if _, err := tx.Exec(ctx, upsertSpecies,
				sp.ID, sp.Name, sp.Description, sp.Rarity, sp.BaseSize, sp.BaseWeight,
				fromTimePeriods(sp.ActivePeriods), fromWeather(sp.PreferredWeather), sp.Habitat,
				sp.Aggressiveness, sp.Elusiveness, sp.Strength, sp.BaseCurrency, sp.BaseExperience,
			); err != nil {
				return fmt.Errorf("failed to save species %s: %w", sp.ID, err)
			}
		}

		for i := range locations {
			loc := &locations[i]
			modifiers, err := json.Marshal(rarityModifiersOrEmpty(loc.RarityModifiers))
			if err != nil {
				return fmt.Errorf("failed to encode rarity modifiers for %s: %w", loc.ID, err)
			}
			population := loc.Population
			if population == nil {
				population = []string{}
			}
			if _, err := tx.Exec(ctx, upsertLocation,
				loc.ID, loc.Name, population, modifiers,
				loc.Modifiers.LineStrength, loc.Modifiers.CastDistance,
				loc.UnlockLevel, loc.FlagshipTemplate,
			); err != nil {
				return fmt.Errorf("failed to save location %s: %w", loc.ID, err)
			}
		}
		return nil
	})
}
