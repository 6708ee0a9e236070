package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_NamedPreset(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  hike:
    budget: 3500
    algorithm: exhaustive
    min_weight: 1
    max_weight: 32
    max_items: 20
`)

	scenario, err := LoadScenario(path, "hike")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, scenario.Budget)
	assert.Equal(t, "exhaustive", scenario.Algorithm)
	assert.Equal(t, 1.0, scenario.MinWeight)
	assert.Equal(t, 32.0, scenario.MaxWeight)
	assert.Equal(t, 20, scenario.MaxItems)
}

func TestLoadScenario_DefaultsApplied(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  daily:
    budget: 2000
`)

	scenario, err := LoadScenario(path, "daily")
	require.NoError(t, err)
	assert.Equal(t, "dp", scenario.Algorithm)
	assert.Equal(t, math.Inf(1), scenario.MaxWeight)
	assert.Zero(t, scenario.MinWeight)
}

func TestLoadScenario_UnknownKeyRejected(t *testing.T) {
	// Strict parsing: typos in the scenarios file must surface as errors.
	path := writeScenarios(t, `
version: "1"
scenarios:
  daily:
    budgit: 2000
`)

	_, err := LoadScenario(path, "daily")
	assert.Error(t, err)
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  daily:
    budget: 2000
`)

	_, err := LoadScenario(path, "feast")
	assert.ErrorContains(t, err, "feast")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"), "daily")
	assert.Error(t, err)
}

func TestLoadScenario_ShippedScenariosFileIsValid(t *testing.T) {
	for _, name := range []string{"daily", "hike", "picnic-exact"} {
		scenario, err := LoadScenario("../scenarios.yaml", name)
		require.NoErrorf(t, err, "scenario %s", name)
		assert.Positivef(t, scenario.Budget, "scenario %s", name)
	}
}
