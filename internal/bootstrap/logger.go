package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/logger"
)

// SetupLogger initializes the application logger from cfg. When cfg.LogDir is set, output is
// also written to a timestamped session file there, and old session files are pruned.
// The returned file (nil without LogDir) must be closed by the caller.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var logFile *os.File
	var out io.Writer = os.Stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "file", logFile != nil)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"catalog_source", cfg.CatalogSource)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"species_path", cfg.SpeciesCatalogPath,
		"locations_path", cfg.LocationCatalogPath,
		"flagship_path", cfg.FlagshipConfigPath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(names)

	for i := 0; i < len(names)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, names[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", names[i], "error", err)
		}
	}
}
