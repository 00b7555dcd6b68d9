package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/castline/internal/domain"
)

// MockEncounterService mocks encounter.Service
type MockEncounterService struct {
	mock.Mock
}

func (m *MockEncounterService) GenerateEncounter(ctx context.Context, locationID string, conditions domain.Conditions) (*domain.Encounter, error) {
	args := m.Called(ctx, locationID, conditions)
	enc, _ := args.Get(0).(*domain.Encounter)
	return enc, args.Error(1)
}

func (m *MockEncounterService) GetEligibleSpecies(ctx context.Context, locationID string, conditions domain.Conditions) []*domain.Species {
	args := m.Called(ctx, locationID, conditions)
	species, _ := args.Get(0).([]*domain.Species)
	return species
}

func (m *MockEncounterService) GetLocationSummary(ctx context.Context, locationID string) (*domain.LocationSummary, bool) {
	args := m.Called(ctx, locationID)
	summary, _ := args.Get(0).(*domain.LocationSummary)
	return summary, args.Bool(1)
}

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
