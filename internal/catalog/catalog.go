package catalog

import (
	"fmt"

	"github.com/osse101/castline/internal/domain"
)

// SpeciesCatalog provides species definitions by id
type SpeciesCatalog interface {
	Get(id string) (*domain.Species, bool)
}

// LocationCatalog provides location definitions by id
type LocationCatalog interface {
	Get(id string) (*domain.Location, bool)
}

// SpeciesStore is an in-memory, read-only SpeciesCatalog
type SpeciesStore struct {
	byID  map[string]*domain.Species
	order []string
}

// Get returns the species with the given id
func (s *SpeciesStore) Get(id string) (*domain.Species, bool) {
	sp, ok := s.byID[id]
	return sp, ok
}

// All returns every species in load order
func (s *SpeciesStore) All() []*domain.Species {
	out := make([]*domain.Species, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Count returns the number of species
func (s *SpeciesStore) Count() int { return len(s.order) }

// LocationStore is an in-memory, read-only LocationCatalog
type LocationStore struct {
	byID  map[string]*domain.Location
	order []string
}

// Get returns the location with the given id
func (l *LocationStore) Get(id string) (*domain.Location, bool) {
	loc, ok := l.byID[id]
	return loc, ok
}

// All returns every location in load order
func (l *LocationStore) All() []*domain.Location {
	out := make([]*domain.Location, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

// Count returns the number of locations
func (l *LocationStore) Count() int { return len(l.order) }

// Catalog bundles both stores, built once at startup
type Catalog struct {
	Species   *SpeciesStore
	Locations *LocationStore

	// Anomalies found while building; see Anomaly
	Anomalies []Anomaly
}

// New builds a catalog from definitions. Duplicate ids are rejected; field-level problems are
// reported as anomalies and left for the engine to treat as neutral.
func New(species []domain.Species, locations []domain.Location) (*Catalog, error) {
	ss := &SpeciesStore{byID: make(map[string]*domain.Species, len(species))}
	for i := range species {
		sp := species[i]
		if sp.ID == "" {
			return nil, fmt.Errorf("%w: species at index %d has no id", domain.ErrCatalogInvalid, i)
		}
		if _, dup := ss.byID[sp.ID]; dup {
			return nil, fmt.Errorf("%w: species %q", domain.ErrDuplicateID, sp.ID)
		}
		ss.byID[sp.ID] = &sp
		ss.order = append(ss.order, sp.ID)
	}

	ls := &LocationStore{byID: make(map[string]*domain.Location, len(locations))}
	for i := range locations {
		loc := locations[i]
		if loc.ID == "" {
			return nil, fmt.Errorf("%w: location at index %d has no id", domain.ErrCatalogInvalid, i)
		}
		if _, dup := ls.byID[loc.ID]; dup {
			return nil, fmt.Errorf("%w: location %q", domain.ErrDuplicateID, loc.ID)
		}
		ls.byID[loc.ID] = &loc
		ls.order = append(ls.order, loc.ID)
	}

	c := &Catalog{Species: ss, Locations: ls}
	c.reportAnomalies()
	return c, nil
}
