package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one named preset in the scenarios yaml file. Zero filter
// bounds fall back to the widest range (min 0, max +Inf).
type Scenario struct {
	Budget    float64 `yaml:"budget"`
	Algorithm string  `yaml:"algorithm"`
	MinWeight float64 `yaml:"min_weight"`
	MaxWeight float64 `yaml:"max_weight"`
	MaxItems  int     `yaml:"max_items"`
}

// ScenarioFile represents the full scenarios yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenario reads the scenarios file and returns the named preset.
// Unknown yaml keys are errors, so typos in the file surface immediately.
func LoadScenario(path, name string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenarios file: %w", err)
	}

	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return Scenario{}, fmt.Errorf("parse scenarios file %s: %w", path, err)
	}

	scenario, ok := file.Scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	if scenario.Algorithm == "" {
		scenario.Algorithm = "dp"
	}
	if scenario.MaxWeight == 0 {
		scenario.MaxWeight = math.Inf(1)
	}
	return scenario, nil
}
