package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookups
	ErrMsgLocationNotFound = "location not found"
	ErrMsgSpeciesNotFound  = "species not found"

	// Selection outcomes
	ErrMsgNoEligibleSpecies = "no eligible species"

	// Flagship configuration
	ErrMsgFlagshipTemplateMissing = "flagship template not registered"

	// Catalog loading
	ErrMsgCatalogInvalid   = "catalog is invalid"
	ErrMsgDuplicateID      = "duplicate id"
	ErrMsgInvalidFlagship  = "invalid flagship configuration"
	ErrMsgInvalidCondition = "invalid conditions"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// ErrLocationNotFound, ErrNoEligibleSpecies and ErrFlagshipTemplateMissing are never returned by the
// encounter engine: they describe a "no encounter" or "gate declined" outcome and are used as the
// reason attached to logs and metrics.
var (
	ErrLocationNotFound = errors.New(ErrMsgLocationNotFound)
	ErrSpeciesNotFound  = errors.New(ErrMsgSpeciesNotFound)

	ErrNoEligibleSpecies = errors.New(ErrMsgNoEligibleSpecies)

	ErrFlagshipTemplateMissing = errors.New(ErrMsgFlagshipTemplateMissing)

	ErrCatalogInvalid    = errors.New(ErrMsgCatalogInvalid)
	ErrDuplicateID       = errors.New(ErrMsgDuplicateID)
	ErrInvalidFlagship   = errors.New(ErrMsgInvalidFlagship)
	ErrInvalidConditions = errors.New(ErrMsgInvalidCondition)
)
