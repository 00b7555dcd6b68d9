package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Species(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid species catalog",
			data:      `{"version": "1.0", "species": [{"id": "bass", "name": "Bass", "rarity": 1, "base_size": 40, "base_weight": 2.5}]}`,
			wantError: false,
		},
		{
			name:      "numeric fields may be missing",
			data:      `{"version": "1.0", "species": [{"id": "mystery", "name": "Mystery"}]}`,
			wantError: false,
		},
		{
			name:      "missing name",
			data:      `{"version": "1.0", "species": [{"id": "bass"}]}`,
			wantError: true,
			errorMsg:  "/species/0",
		},
		{
			name:      "unknown field",
			data:      `{"version": "1.0", "species": [{"id": "bass", "name": "Bass", "colour": "green"}]}`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "wrong type",
			data:      `{"version": "1.0", "species": [{"id": "bass", "name": "Bass", "rarity": "common"}]}`,
			wantError: true,
			errorMsg:  "/species/0/rarity",
		},
		{
			name:      "not JSON",
			data:      `{"version": `,
			wantError: true,
			errorMsg:  "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaSpecies)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_Locations(t *testing.T) {
	v := NewSchemaValidator()

	valid := `{"version": "1.0", "locations": [{"id": "harbor", "name": "Harbor", "population": ["bass"],
		"rarity_modifiers": {"rare": 1.5}, "modifiers": {"line_strength": 0.9, "cast_distance": 1.0}, "unlock_level": 1}]}`
	assert.NoError(t, v.ValidateBytes([]byte(valid), SchemaLocations))

	badBucket := `{"version": "1.0", "locations": [{"id": "harbor", "name": "Harbor", "population": ["bass"],
		"rarity_modifiers": {"mythic": 1.5}}]}`
	assert.Error(t, v.ValidateBytes([]byte(badBucket), SchemaLocations))

	zeroModifier := `{"version": "1.0", "locations": [{"id": "harbor", "name": "Harbor", "population": ["bass"],
		"rarity_modifiers": {"rare": 0}}]}`
	assert.Error(t, v.ValidateBytes([]byte(zeroModifier), SchemaLocations))
}

func TestSchemaValidator_Flagship(t *testing.T) {
	v := NewSchemaValidator()

	valid := `{"version": "1.0", "probability": 0.02, "prefixes": ["Ancient"],
		"sites": {"abyss": "leviathan"},
		"templates": {"leviathan": {"species_id": "leviathan", "base_name": "Leviathan", "base_size": 900}}}`
	assert.NoError(t, v.ValidateBytes([]byte(valid), SchemaFlagship))

	badProbability := `{"version": "1.0", "probability": 1.5, "sites": {}, "templates": {}}`
	err := v.ValidateBytes([]byte(badProbability), SchemaFlagship)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/probability")
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()

	path := filepath.Join(t.TempDir(), "species.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0", "species": [{"id": "a", "name": "A"}]}`), 0644))

	assert.NoError(t, v.ValidateFile(path, SchemaSpecies))
	assert.Error(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), SchemaSpecies))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	data := []byte(`{"version": "1.0", "species": [{"id": "a", "name": "A"}]}`)
	require.NoError(t, v.ValidateBytes(data, SchemaSpecies))
	require.NoError(t, v.ValidateBytes(data, SchemaSpecies))

	assert.Len(t, v.schemas, 1)
}
