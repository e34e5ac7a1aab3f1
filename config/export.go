package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"splinther"
)

// Result is the on-disk form of a calculation result.
type Result struct {
	OutletTemperature       float64 `yaml:"outlet_temperature" json:"outlet_temperature"`               // K
	PressureDrop            float64 `yaml:"pressure_drop" json:"pressure_drop"`                         // Pa
	ReynoldsNumber          float64 `yaml:"reynolds_number" json:"reynolds_number"`                     // dimensionless
	HeatTransferCoefficient float64 `yaml:"heat_transfer_coefficient" json:"heat_transfer_coefficient"` // W/(m2 K)
	MaxFuelTemperature      float64 `yaml:"max_fuel_temperature" json:"max_fuel_temperature"`           // K
}

// FromResult wraps a core calculation result for export.
func FromResult(res splinther.CalculationResult) Result {
	return Result{
		OutletTemperature:       res.OutletTemperature,
		PressureDrop:            res.PressureDrop,
		ReynoldsNumber:          res.ReynoldsNumber,
		HeatTransferCoefficient: res.HeatTransferCoefficient,
		MaxFuelTemperature:      res.MaxFuelTemperature,
	}
}

/*
Export a configuration or calculation result to a JSON file.

	Args:
		path: destination file path
		v: any JSON-serializable value (Reactor,
			splinther.CalculationResult, ...)
*/
func ExportJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

/*
Export a configuration or calculation result to a YAML file.

	Args:
		path: destination file path
		v: any YAML-serializable value
*/
func ExportYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
