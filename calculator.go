package splinther

// ReactorConfig holds the operating parameters for one steady-state
// calculation. The record is immutable per calculation; a calculator holds a
// copy and only ever replaces it wholesale.
type ReactorConfig struct {
	CoolantInletTemp float64 // K
	CoolantFlowRate  float64 // kg/s
	ReactorPower     float64 // W
	CoreHeight       float64 // m
	CoreDiameter     float64 // m
	Pressure         float64 // Pa
}

// CalculationResult is the derived performance record produced by one
// Calculate invocation. Immutable once produced; no cross-call state.
type CalculationResult struct {
	OutletTemperature       float64 // K
	PressureDrop            float64 // Pa
	ReynoldsNumber          float64 // dimensionless
	HeatTransferCoefficient float64 // W/(m2 K)
	MaxFuelTemperature      float64 // K
}

// ReactorCalculator drives the single-pass calculation pipeline over a held
// configuration. Calculate is pure and safe to call concurrently; callers
// that share a calculator and call UpdateConfig must serialize externally.
type ReactorCalculator struct {
	config ReactorConfig
}

// NewReactorCalculator returns a calculator holding a copy of config.
func NewReactorCalculator(config ReactorConfig) *ReactorCalculator {
	return &ReactorCalculator{config: config}
}

/*
Perform the complete steady-state thermal-hydraulic analysis.

	Returns:
		CalculationResult for the held configuration

	Notes:
		The pipeline is strictly feed-forward: outlet temperature, then
		Reynolds number, heat transfer coefficient and pressure drop at
		the inlet temperature, then the peak fuel temperature at the
		outlet temperature. No validation happens here; invalid numeric
		inputs flow through as NaN/Inf.
*/
func (c *ReactorCalculator) Calculate() CalculationResult {
	outletTemp := CalculateOutletTemperature(
		c.config.CoolantInletTemp,
		c.config.ReactorPower,
		c.config.CoolantFlowRate,
	)

	// Flow characterization uses the inlet temperature convention
	reynolds := CalculateReynoldsNumber(
		c.config.CoolantFlowRate,
		c.config.CoreDiameter,
		c.config.CoolantInletTemp,
	)

	heatTransferCoef := CalculateHeatTransferCoefficient(
		reynolds,
		c.config.CoreDiameter,
		c.config.CoolantInletTemp,
	)

	pressureDrop := CalculatePressureDrop(
		c.config.CoolantFlowRate,
		c.config.CoreHeight,
		c.config.CoreDiameter,
		reynolds,
		c.config.CoolantInletTemp,
	)

	maxFuelTemp := CalculateMaxFuelTemperature(
		outletTemp,
		c.config.ReactorPower,
		heatTransferCoef,
		c.config.CoreHeight,
		c.config.CoreDiameter,
	)

	return CalculationResult{
		OutletTemperature:       outletTemp,
		PressureDrop:            pressureDrop,
		ReynoldsNumber:          reynolds,
		HeatTransferCoefficient: heatTransferCoef,
		MaxFuelTemperature:      maxFuelTemp,
	}
}

// Config returns the currently held configuration.
func (c *ReactorCalculator) Config() ReactorConfig {
	return c.config
}

// UpdateConfig replaces the held configuration wholesale.
func (c *ReactorCalculator) UpdateConfig(config ReactorConfig) {
	c.config = config
}
