package config

import (
	"fmt"
	"strings"

	"splinther"
)

// Physical constraint limits for reactor configurations.
const (
	MinTemp = 273.15 // K, coolant freezing floor
	MaxTemp = 1500.0 // K, maximum reasonable coolant temperature

	MinFlowRate = 0.1    // kg/s, minimum practical flow
	MaxFlowRate = 1000.0 // kg/s

	MinPower = 1e3 // W, minimum useful power
	MaxPower = 1e8 // W

	MinDimension = 0.01 // m
	MaxDimension = 10.0 // m

	MinPressure = 1e3 // Pa
	MaxPressure = 1e8 // Pa
)

// ValidationError aggregates the messages produced by a failed strict
// validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "configuration validation failed:\n  - " + strings.Join(e.Messages, "\n  - ")
}

/*
Validate a reactor configuration against the physical limits.

	Args:
		r: the configuration document to check

	Returns:
		(1) hard errors: values outside the physical limits
		(2) warnings: values that are legal but suspicious

	Notes:
		A configuration with warnings but no errors is still usable;
		strict callers should use ValidateStrict.
*/
func Validate(r Reactor) (errors []string, warnings []string) {
	if r.CoolantInletTemp < MinTemp {
		errors = append(errors, fmt.Sprintf(
			"coolant inlet temperature (%gK) below minimum (%gK)", r.CoolantInletTemp, MinTemp))
	} else if r.CoolantInletTemp < 400.0 {
		warnings = append(warnings, fmt.Sprintf(
			"coolant inlet temperature (%gK) is unusually low for liquid metal coolants", r.CoolantInletTemp))
	}
	if r.CoolantInletTemp > MaxTemp {
		errors = append(errors, fmt.Sprintf(
			"coolant inlet temperature (%gK) exceeds maximum (%gK)", r.CoolantInletTemp, MaxTemp))
	}

	if r.CoolantFlowRate < MinFlowRate {
		errors = append(errors, fmt.Sprintf(
			"coolant flow rate (%g kg/s) below minimum (%g kg/s)", r.CoolantFlowRate, MinFlowRate))
	}
	if r.CoolantFlowRate > MaxFlowRate {
		errors = append(errors, fmt.Sprintf(
			"coolant flow rate (%g kg/s) exceeds maximum (%g kg/s)", r.CoolantFlowRate, MaxFlowRate))
	}

	if r.ReactorPower < MinPower {
		errors = append(errors, fmt.Sprintf(
			"reactor power (%g W) below minimum (%g W)", r.ReactorPower, MinPower))
	}
	if r.ReactorPower > MaxPower {
		errors = append(errors, fmt.Sprintf(
			"reactor power (%g W) exceeds maximum (%g W)", r.ReactorPower, MaxPower))
	}

	if r.CoreHeight < MinDimension {
		errors = append(errors, fmt.Sprintf(
			"core height (%g m) below minimum (%g m)", r.CoreHeight, MinDimension))
	}
	if r.CoreHeight > MaxDimension {
		errors = append(errors, fmt.Sprintf(
			"core height (%g m) exceeds maximum (%g m)", r.CoreHeight, MaxDimension))
	}
	if r.CoreDiameter < MinDimension {
		errors = append(errors, fmt.Sprintf(
			"core diameter (%g m) below minimum (%g m)", r.CoreDiameter, MinDimension))
	}
	if r.CoreDiameter > MaxDimension {
		errors = append(errors, fmt.Sprintf(
			"core diameter (%g m) exceeds maximum (%g m)", r.CoreDiameter, MaxDimension))
	}

	if r.Pressure < MinPressure {
		errors = append(errors, fmt.Sprintf(
			"system pressure (%g Pa) below minimum (%g Pa)", r.Pressure, MinPressure))
	}
	if r.Pressure > MaxPressure {
		errors = append(errors, fmt.Sprintf(
			"system pressure (%g Pa) exceeds maximum (%g Pa)", r.Pressure, MaxPressure))
	}

	// Thermal balance sanity check (warning only)
	if r.CoolantFlowRate > 0 {
		expectedTempRise := r.ReactorPower / (r.CoolantFlowRate * splinther.SodiumCp)
		if expectedTempRise > 200.0 {
			warnings = append(warnings, fmt.Sprintf(
				"large temperature rise expected (%.1fK), consider increasing flow rate", expectedTempRise))
		}
	}

	return errors, warnings
}

/*
Validate a reactor configuration in strict mode.

	Args:
		r: the configuration document to check

	Returns:
		a *ValidationError carrying every error and warning message, or
		nil when the configuration is clean
*/
func ValidateStrict(r Reactor) error {
	errs, warns := Validate(r)
	all := append(errs, warns...)
	if len(all) > 0 {
		return &ValidationError{Messages: all}
	}
	return nil
}
