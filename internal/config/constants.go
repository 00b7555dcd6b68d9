package config

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Default configuration file paths
const (
	ConfigPathSpecies   = "configs/species.json"
	ConfigPathLocations = "configs/locations.json"
	ConfigPathFlagship  = "configs/flagship.json"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultSummaryCacheSize = 256
	DefaultDBMaxConns       = 10
)

// Sentinel for FlagshipProbability meaning "use the value in the flagship file"
const FlagshipProbabilityFromFile = -1.0
