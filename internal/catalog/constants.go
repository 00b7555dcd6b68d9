package catalog

// Anomaly kinds reported to metrics
const (
	AnomalyKindSpecies  = "species"
	AnomalyKindLocation = "location"
	AnomalyKindFlagship = "flagship"
)

// Anomaly fields for cross-reference checks
const (
	AnomalyFieldPopulation       = "population"
	AnomalyFieldFlagshipTemplate = "flagship_template"
	AnomalyFieldSites            = "sites"
)

// Log messages
const (
	LogMsgCatalogLoaded        = "Catalog loaded"
	LogMsgDataAnomaly          = "Catalog data anomaly, treating value as neutral"
	LogMsgUnknownPopulationRef = "Location population references unknown species"
)

// Log field keys
const (
	LogFieldKind      = "kind"
	LogFieldID        = "id"
	LogFieldField     = "field"
	LogFieldRule      = "rule"
	LogFieldLocation  = "location"
	LogFieldSpecies   = "species"
	LogFieldSpeciesN  = "species_count"
	LogFieldLocationN = "location_count"
	LogFieldSource    = "source"
)

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToLoadSpecies   = "failed to load species catalog"
	ErrContextFailedToLoadLocations = "failed to load location catalog"
)
