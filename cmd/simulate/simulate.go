package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/osse101/castline/internal/domain"
	"github.com/osse101/castline/internal/encounter"
)

// SpeciesCount is one row of the distribution
type SpeciesCount struct {
	SpeciesID string  `json:"species_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Share     float64 `json:"share"`
}

// Report summarizes a batch of encounters at one location
type Report struct {
	LocationID     string            `json:"location_id"`
	Conditions     domain.Conditions `json:"conditions"`
	Seed           int64             `json:"seed,omitempty"`
	Draws          int               `json:"draws"`
	NoEncounters   int               `json:"no_encounters"`
	Flagships      int               `json:"flagships"`
	MeanDifficulty float64           `json:"mean_difficulty"`
	Species        []SpeciesCount    `json:"species"`
}

// Simulate runs draws encounters and aggregates them. Flagships are counted separately and
// do not appear in the species distribution.
func Simulate(ctx context.Context, svc encounter.Service, locationID string, cond domain.Conditions, draws int) (*Report, error) {
	report := &Report{LocationID: locationID, Conditions: cond, Draws: draws, Species: []SpeciesCount{}}

	counts := make(map[string]*SpeciesCount)
	var difficultySum float64
	var caught int

	for i := 0; i < draws; i++ {
		enc, err := svc.GenerateEncounter(ctx, locationID, cond)
		if err != nil {
			return nil, err
		}
		if enc == nil {
			report.NoEncounters++
			continue
		}

		caught++
		difficultySum += enc.Difficulty

		if enc.IsFlagship {
			report.Flagships++
			continue
		}

		row, ok := counts[enc.SpeciesID]
		if !ok {
			row = &SpeciesCount{SpeciesID: enc.SpeciesID, Name: enc.Name}
			counts[enc.SpeciesID] = row
		}
		row.Count++
	}

	if caught > 0 {
		report.MeanDifficulty = difficultySum / float64(caught)
	}

	for _, row := range counts {
		row.Share = float64(row.Count) / float64(draws)
		report.Species = append(report.Species, *row)
	}
	sort.Slice(report.Species, func(i, j int) bool {
		if report.Species[i].Count != report.Species[j].Count {
			return report.Species[i].Count > report.Species[j].Count
		}
		return report.Species[i].SpeciesID < report.Species[j].SpeciesID
	})

	return report, nil
}

// Print writes a human-readable table of the report
func (r *Report) Print(w io.Writer) error {
	fmt.Fprintf(w, "Location %s, %d draws (time=%q weather=%q level=%d)\n\n",
		r.LocationID, r.Draws, r.Conditions.TimePeriod, r.Conditions.Weather, r.Conditions.RequesterLevel)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIES\tNAME\tCOUNT\tSHARE")
	for _, row := range r.Species {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f%%\n", row.SpeciesID, row.Name, row.Count, row.Share*100)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nFlagships:       %d\n", r.Flagships)
	fmt.Fprintf(w, "No encounter:    %d\n", r.NoEncounters)
	fmt.Fprintf(w, "Mean difficulty: %.2f\n", r.MeanDifficulty)
	return nil
}
