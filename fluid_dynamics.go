package splinther

import "math"

// Fluid dynamics of the sodium coolant flow through the core channel.

// FluidState holds the sodium transport properties evaluated at a single
// temperature. It has no identity beyond that temperature and is recomputed
// on every pipeline run.
type FluidState struct {
	Temperature         float64 // K
	Density             float64 // kg/m3
	Viscosity           float64 // Pa s
	ThermalConductivity float64 // W/(m K)
}

/*
Evaluate the sodium transport properties at the given temperature.

	Args:
		temperature: coolant temperature, K

	Returns:
		FluidState with density, viscosity and thermal conductivity
*/
func GetFluidState(temperature float64) FluidState {
	return FluidState{
		Temperature:         temperature,
		Density:             SodiumDensity(temperature),
		Viscosity:           SodiumViscosity(temperature),
		ThermalConductivity: SodiumThermalConductivity(temperature),
	}
}

/*
Density of liquid sodium as a function of temperature.

	Args:
		temperature: coolant temperature, K

	Returns:
		density, kg/m3

	Notes:
		Empirical correlation rho = 1014 - 0.235 * (T - 273.15).
		Extrapolation outside roughly 400-1200 K is not guarded against.
*/
func SodiumDensity(temperature float64) float64 {
	return 1014.0 - 0.235*(temperature-273.15)
}

/*
Dynamic viscosity of liquid sodium.

	Args:
		temperature: coolant temperature, K

	Returns:
		dynamic viscosity, Pa s

	Notes:
		mu = 0.001 * exp(-2.45e-4 * (T - 273.15)), about 0.001 Pa s at
		typical reactor temperatures.
*/
func SodiumViscosity(temperature float64) float64 {
	tempCelsius := temperature - 273.15
	return SodiumViscosityBase * math.Exp(SodiumViscosityTempCoef*tempCelsius)
}

/*
Calculate the coolant flow velocity through the circular channel.

	Args:
		flowRate: mass flow rate, kg/s
		diameter: hydraulic diameter, m
		temperature: coolant temperature, K

	Returns:
		flow velocity, m/s

	Notes:
		Produces +Inf/NaN rather than an error for non-positive diameter
		or density; geometry validation is a caller concern.
*/
func CalculateVelocity(flowRate, diameter, temperature float64) float64 {
	density := SodiumDensity(temperature)
	area := math.Pi * diameter * diameter / 4.0
	return flowRate / (density * area)
}

/*
Calculate the Reynolds number for flow characterization.

	Args:
		flowRate: mass flow rate, kg/s
		diameter: hydraulic diameter, m
		temperature: coolant temperature, K

	Returns:
		Reynolds number, dimensionless
*/
func CalculateReynoldsNumber(flowRate, diameter, temperature float64) float64 {
	density := SodiumDensity(temperature)
	viscosity := SodiumViscosity(temperature)
	velocity := CalculateVelocity(flowRate, diameter, temperature)

	// Re = rho * V * D / mu
	return density * velocity * diameter / viscosity
}

// IsTurbulent reports whether the flow is turbulent (Re > 4000, strict).
func IsTurbulent(reynolds float64) bool {
	return reynolds > 4000.0
}

/*
Calculate the Darcy friction factor with the regime-appropriate correlation.

	Args:
		reynolds: Reynolds number

	Returns:
		Darcy friction factor, dimensionless

	Notes:
		Laminar (Re < 2300): 64/Re.
		Turbulent (Re >= 4000): Blasius, 0.316/Re^0.25.
		Transition: linear blend between the laminar value at Re = 2300
		and the Blasius value at the actual Re, weighted by
		(Re - 2300)/1700.
*/
func CalculateFrictionFactor(reynolds float64) float64 {
	if reynolds < 2300.0 {
		// Laminar flow
		return 64.0 / reynolds
	} else if reynolds < 4000.0 {
		// Transition region - linear interpolation
		fLam := 64.0 / 2300.0
		fTurb := 0.316 / math.Pow(reynolds, 0.25)
		return fLam + (fTurb-fLam)*(reynolds-2300.0)/1700.0
	}
	// Turbulent flow - Blasius correlation
	return 0.316 / math.Pow(reynolds, 0.25)
}

// FlowState holds the flow characterization derived from the fluid state and
// the channel geometry.
type FlowState struct {
	ReynoldsNumber float64 // dimensionless
	Velocity       float64 // m/s
	FrictionFactor float64 // dimensionless
	Turbulent      bool
}

/*
Characterize the coolant flow for the given operating point.

	Args:
		flowRate: mass flow rate, kg/s
		diameter: hydraulic diameter, m
		temperature: coolant temperature, K

	Returns:
		FlowState with Reynolds number, velocity, friction factor and
		turbulence flag
*/
func CharacterizeFlow(flowRate, diameter, temperature float64) FlowState {
	re := CalculateReynoldsNumber(flowRate, diameter, temperature)
	return FlowState{
		ReynoldsNumber: re,
		Velocity:       CalculateVelocity(flowRate, diameter, temperature),
		FrictionFactor: CalculateFrictionFactor(re),
		Turbulent:      IsTurbulent(re),
	}
}
