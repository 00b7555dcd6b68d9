package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting castline"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog and Engine
// =============================================================================

const (
	LogMsgConnectingDatabase   = "Connecting to database"
	LogMsgMigrationsApplied    = "Catalog migrations applied"
	LogMsgCatalogSynced        = "Catalog synced to database"
	LogMsgFlagshipDisabled     = "Flagship config not found; flagship encounters disabled"
	LogMsgFlagshipOverride     = "Flagship probability overridden by environment"
	LogMsgFlagshipLoaded       = "Flagship config loaded"
	LogMsgCatalogAnomalies     = "Catalog loaded with data anomalies"
	LogMsgSeededRNG            = "Using seeded RNG; encounters are reproducible"
	LogMsgEncounterEngineReady = "Encounter engine ready"

	ErrMsgUnknownCatalogSource  = "unknown catalog source"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to apply catalog migrations"
	ErrMsgFailedLoadCatalog     = "failed to load catalog"
	ErrMsgFailedLoadFlagship    = "failed to load flagship config"
	ErrMsgFailedSyncCatalog     = "failed to sync catalog to database"
	ErrMsgFailedCreateService   = "failed to create encounter service"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
