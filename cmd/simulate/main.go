package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/castline/internal/bootstrap"
	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/logger"
	"github.com/osse101/castline/internal/utils"
	"github.com/osse101/castline/internal/validation"
)

func main() {
	locationID := flag.String("location", "harbor", "Location id to fish at")
	draws := flag.Int("n", 10000, "Number of encounters to generate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = nondeterministic)")
	timePeriod := flag.String("time", "", "Time period (dawn, day, dusk, night)")
	weather := flag.String("weather", "", "Weather (clear, cloudy, rain, storm, fog)")
	level := flag.Int("level", 100, "Requester level")
	speciesPath := flag.String("species", config.ConfigPathSpecies, "Path to species catalog")
	locationsPath := flag.String("locations", config.ConfigPathLocations, "Path to location catalog")
	flagshipPath := flag.String("flagship", config.ConfigPathFlagship, "Path to flagship table")
	reportPath := flag.String("report", "", "Write the JSON report to this path")
	verbose := flag.Bool("v", false, "Log every no-encounter and anomaly")
	flag.Parse()

	logLevel := logger.LogLevelWarn
	if *verbose {
		logLevel = logger.LogLevelDebug
	}
	logger.InitLogger(logger.NewConfig(logLevel, logger.LogFormatText, "simulate", "dev", logger.EnvironmentDev, false))

	cfg := &config.Config{
		CatalogSource:       config.CatalogSourceFile,
		SpeciesCatalogPath:  *speciesPath,
		LocationCatalogPath: *locationsPath,
		FlagshipConfigPath:  *flagshipPath,
		FlagshipProbability: config.FlagshipProbabilityFromFile,
		RNGSeed:             *seed,
		SummaryCacheSize:    config.DefaultSummaryCacheSize,
	}

	ctx := context.Background()
	schemas := validation.NewSchemaValidator()

	cat, _, err := bootstrap.LoadCatalog(ctx, cfg, schemas)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	flagship, err := bootstrap.LoadFlagship(cfg, schemas)
	if err != nil {
		log.Fatalf("Failed to load flagship table: %v", err)
	}
	svc, err := bootstrap.NewEncounterService(cfg, cat, flagship)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cond := domain.Conditions{
		TimePeriod:     domain.TimePeriod(*timePeriod),
		Weather:        domain.Weather(*weather),
		RequesterLevel: *level,
	}

	report, err := Simulate(ctx, svc, *locationID, cond, *draws)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	report.Seed = *seed

	if err := report.Print(os.Stdout); err != nil {
		log.Fatalf("Failed to print report: %v", err)
	}

	if *reportPath != "" {
		if err := utils.SaveJSON(*reportPath, report); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("Report written to %s\n", *reportPath)
	}
}
