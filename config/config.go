// Package config is the configuration boundary for the splinther core:
// loading reactor parameter files (YAML or JSON), validating them against
// physical limits, and exporting configurations and results. The core
// library itself performs no validation and no I/O.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"splinther"
)

// Reactor is the on-disk reactor parameter document. The six physical
// parameters mirror splinther.ReactorConfig; Name and Description are
// optional annotations that never reach the calculation pipeline.
type Reactor struct {
	CoolantInletTemp float64 `yaml:"coolant_inlet_temp" json:"coolant_inlet_temp"` // K
	CoolantFlowRate  float64 `yaml:"coolant_flow_rate" json:"coolant_flow_rate"`   // kg/s
	ReactorPower     float64 `yaml:"reactor_power" json:"reactor_power"`           // W
	CoreHeight       float64 `yaml:"core_height" json:"core_height"`               // m
	CoreDiameter     float64 `yaml:"core_diameter" json:"core_diameter"`           // m
	Pressure         float64 `yaml:"pressure" json:"pressure"`                     // Pa

	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ToConfig converts the document into the core calculation record.
func (r Reactor) ToConfig() splinther.ReactorConfig {
	return splinther.ReactorConfig{
		CoolantInletTemp: r.CoolantInletTemp,
		CoolantFlowRate:  r.CoolantFlowRate,
		ReactorPower:     r.ReactorPower,
		CoreHeight:       r.CoreHeight,
		CoreDiameter:     r.CoreDiameter,
		Pressure:         r.Pressure,
	}
}

// FromConfig wraps a core calculation record back into a document.
func FromConfig(cfg splinther.ReactorConfig) Reactor {
	return Reactor{
		CoolantInletTemp: cfg.CoolantInletTemp,
		CoolantFlowRate:  cfg.CoolantFlowRate,
		ReactorPower:     cfg.ReactorPower,
		CoreHeight:       cfg.CoreHeight,
		CoreDiameter:     cfg.CoreDiameter,
		Pressure:         cfg.Pressure,
	}
}

/*
Load a reactor configuration file, dispatching on the file extension.

	Args:
		path: path to a .yaml, .yml or .json configuration file

	Returns:
		the parsed Reactor document
*/
func Load(path string) (Reactor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".json":
		return LoadJSON(path)
	default:
		return Reactor{}, fmt.Errorf("unsupported configuration format: %s", path)
	}
}

// LoadYAML reads a reactor configuration from a YAML file.
func LoadYAML(path string) (Reactor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Reactor{}, fmt.Errorf("read configuration %s: %w", path, err)
	}

	var r Reactor
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Reactor{}, fmt.Errorf("parse configuration %s: %w", path, err)
	}
	return r, nil
}

// LoadJSON reads a reactor configuration from a JSON file.
func LoadJSON(path string) (Reactor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Reactor{}, fmt.Errorf("read configuration %s: %w", path, err)
	}

	var r Reactor
	if err := json.Unmarshal(data, &r); err != nil {
		return Reactor{}, fmt.Errorf("parse configuration %s: %w", path, err)
	}
	return r, nil
}
