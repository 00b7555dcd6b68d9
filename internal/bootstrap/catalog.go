package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/castline/internal/catalog"
	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/database"
	"github.com/osse101/castline/internal/database/postgres"
	"github.com/osse101/castline/internal/encounter"
	"github.com/osse101/castline/internal/validation"
)

// ConnectDatabase opens the pool described by cfg and applies catalog migrations
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	slog.Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "name", cfg.DBName)

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	return pool, nil
}

// LoadCatalog builds the catalog from the configured source. For the postgres source the open
// pool is returned as well and must be closed by the caller; for files it is nil.
func LoadCatalog(ctx context.Context, cfg *config.Config, schemas validation.SchemaValidator) (*catalog.Catalog, *pgxpool.Pool, error) {
	var (
		cat  *catalog.Catalog
		pool *pgxpool.Pool
		err  error
	)

	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		cat, err = catalog.LoadFiles(cfg.SpeciesCatalogPath, cfg.LocationCatalogPath, schemas)
	case config.CatalogSourcePostgres:
		pool, err = ConnectDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cat, err = postgres.NewCatalogRepository(pool).LoadCatalog(ctx)
		if err != nil {
			pool.Close()
			pool = nil
		}
	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownCatalogSource, cfg.CatalogSource)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if n := len(cat.Anomalies); n > 0 {
		slog.Warn(LogMsgCatalogAnomalies, "count", n)
	}
	return cat, pool, nil
}

// SyncCatalog loads the catalog files named in cfg and upserts them into the database
func SyncCatalog(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, schemas validation.SchemaValidator) (*catalog.Catalog, error) {
	cat, err := catalog.LoadFiles(cfg.SpeciesCatalogPath, cfg.LocationCatalogPath, schemas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := postgres.NewCatalogRepository(pool).SaveCatalog(ctx, values(cat.Species.All()), values(cat.Locations.All())); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced, "species", cat.Species.Count(), "locations", cat.Locations.Count())
	return cat, nil
}

// LoadFlagship reads the flagship table and applies the FLAGSHIP_PROBABILITY override.
// A missing file disables flagship encounters rather than failing startup.
func LoadFlagship(cfg *config.Config, schemas validation.SchemaValidator) (*encounter.FlagshipConfig, error) {
	flagship, err := encounter.LoadFlagshipConfig(cfg.FlagshipConfigPath, schemas)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgFlagshipDisabled, "path", cfg.FlagshipConfigPath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFlagship, err)
	}

	if cfg.HasFlagshipOverride() {
		slog.Info(LogMsgFlagshipOverride, "file", flagship.Probability, "override", cfg.FlagshipProbability)
		flagship.Probability = cfg.FlagshipProbability
	}

	slog.Info(LogMsgFlagshipLoaded,
		"version", flagship.Version,
		"probability", flagship.Probability,
		"sites", len(flagship.Sites))
	return flagship, nil
}

func values[T any](in []*T) []T {
	out := make([]T, len(in))
	for i, p := range in {
		out[i] = *p
	}
	return out
}
