package encounter

// baseRarityWeights is indexed by rarity tier - 1
var baseRarityWeights = []float64{10, 6, 3, 1.5, 0.8, 0.4, 0.2, 0.1, 0.05, 0.02}

// Weight calculation
const (
	DefaultRarityWeight = 1.0
	ActivePeriodBonus   = 1.5
	WeatherBonus        = 1.3
	MinWeight           = 0.01
)

// Level gating
const (
	LevelPerRarityTier = 3
	MinRequiredLevel   = 1
)

// Instance variance bands
const (
	SizeVarianceMin   = 0.8
	SizeVarianceMax   = 1.2
	WeightVarianceMin = 0.75
	WeightVarianceMax = 1.25
)

// Difficulty scoring
const (
	DifficultyRarityCoeff      = 0.5
	DifficultyElusivenessCoeff = 0.3
	DifficultyStrengthCoeff    = 0.2

	WeakLineDifficultyMult  = 1.2
	ShortCastDifficultyMult = 1.1

	MinDifficulty = 1.0
	MaxDifficulty = 10.0
)

// Flagship boosts
const (
	DefaultFlagshipProbability = 0.02

	FlagshipSizeMin   = 1.5
	FlagshipSizeMax   = 2.0
	FlagshipWeightMin = 2.0
	FlagshipWeightMax = 3.0

	FlagshipCurrencyMult   = 3
	FlagshipExperienceMult = 4

	FlagshipDifficultyMin = 9.0
	FlagshipDifficultyMax = 10.0
)

// DefaultSummaryCacheSize bounds the memoized location summaries
const DefaultSummaryCacheSize = 256

// No-encounter reasons used as metric labels
const (
	ReasonLocationNotFound = "location_not_found"
	ReasonNoEligible       = "no_eligible_species"
)

// Log messages
const (
	LogMsgNoEncounter              = "No encounter generated"
	LogMsgEncounterGenerated       = "Encounter generated"
	LogMsgFlagshipGenerated        = "Flagship encounter generated"
	LogMsgFlagshipTemplateMissing  = "Flagship site has no registered template, declining"
	LogMsgUnknownPopulationSpecies = "Skipping population entry with unknown species"
	LogMsgSelectionExhausted       = "Weighted draw exhausted candidates, using first candidate"
	LogMsgFlagshipConfigLoaded     = "Flagship config loaded"
	LogMsgFlagshipSiteMismatch     = "Location flagship_template disagrees with the flagship table"
	LogMsgFlagshipSiteUnknown      = "Flagship table names a location missing from the catalog"
)

// Log field keys
const (
	LogFieldLocation        = "location"
	LogFieldSpecies         = "species"
	LogFieldReason          = "reason"
	LogFieldInstanceID      = "instance_id"
	LogFieldDifficulty      = "difficulty"
	LogFieldTemplate        = "template"
	LogFieldCatalogTemplate = "catalog_template"
	LogFieldTitle           = "title"
	LogFieldSites           = "sites"
	LogFieldCandidates      = "candidates"
)

// Error context messages
const (
	ErrContextFailedToLoadFlagship = "failed to load flagship config"
)
