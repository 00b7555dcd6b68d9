package postgres

import "github.com/osse101/castline/internal/domain"

func toTimePeriods(in []string) []domain.TimePeriod {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.TimePeriod, len(in))
	for i, s := range in {
		out[i] = domain.TimePeriod(s)
	}
	return out
}

func fromTimePeriods(in []domain.TimePeriod) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = string(p)
	}
	return out
}

func toWeather(in []string) []domain.Weather {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Weather, len(in))
	for i, s := range in {
		out[i] = domain.Weather(s)
	}
	return out
}

func fromWeather(in []domain.Weather) []string {
	out := make([]string, len(in))
	for i, w := range in {
		out[i] = string(w)
	}
	return out
}

func rarityModifiersOrEmpty(in map[domain.RarityBucket]float64) map[domain.RarityBucket]float64 {
	if in == nil {
		return map[domain.RarityBucket]float64{}
	}
	return in
}
