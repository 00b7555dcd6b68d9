package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Encounter Metrics
var (
	EncountersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersGenerated,
			Help: HelpTextEncountersGenerated,
		},
		[]string{LabelLocation, LabelSpecies, LabelFlagship},
	)

	NoEncounters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNoEncounters,
			Help: HelpTextNoEncounters,
		},
		[]string{LabelReason},
	)

	FlagshipRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFlagshipRolls,
			Help: HelpTextFlagshipRolls,
		},
		[]string{LabelLocation, LabelResult},
	)

	EncounterDifficulty = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEncounterDifficulty,
			Help:    HelpTextEncounterDifficulty,
			Buckets: DifficultyBuckets,
		},
	)

	DataAnomalies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDataAnomalies,
			Help: HelpTextDataAnomalies,
		},
		[]string{LabelKind, LabelField},
	)
)

// RecordEncounter updates the counters for one generated encounter
func RecordEncounter(locationID, speciesID string, flagship bool, difficulty float64) {
	EncountersGenerated.WithLabelValues(locationID, speciesID, strconv.FormatBool(flagship)).Inc()
	EncounterDifficulty.Observe(difficulty)
}
