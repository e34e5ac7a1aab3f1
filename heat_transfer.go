package splinther

import "math"

// Convective heat transfer between the fuel surface and the sodium coolant.

/*
Thermal conductivity of liquid sodium.

	Args:
		temperature: coolant temperature, K

	Returns:
		thermal conductivity, W/(m K)

	Notes:
		k = 86 - 0.047 * (T - 273.15), about 86 W/(m K) at typical
		reactor temperatures.
*/
func SodiumThermalConductivity(temperature float64) float64 {
	tempCelsius := temperature - 273.15
	return 86.0 - 0.047*tempCelsius
}

/*
Prandtl number for liquid sodium.

	Args:
		temperature: coolant temperature, K

	Returns:
		Prandtl number, dimensionless

	Notes:
		Pr = cp * mu / k. Liquid metals sit well below 0.1.
*/
func CalculatePrandtlNumber(temperature float64) float64 {
	viscosity := SodiumViscosity(temperature)
	thermalCond := SodiumThermalConductivity(temperature)
	return SodiumCp * viscosity / thermalCond
}

/*
Calculate the Nusselt number with the regime-appropriate correlation.

	Args:
		reynolds: Reynolds number
		prandtl: Prandtl number

	Returns:
		Nusselt number, dimensionless

	Notes:
		Laminar (Re < 2300): constant 3.66 for fully developed flow.
		Turbulent (Re > 4000): Dittus-Boelter, 0.023 * Re^0.8 * Pr^0.4.
		Transition: linear blend between the laminar constant and the
		Dittus-Boelter value evaluated at the boundary Re = 4000,
		weighted by (Re - 2300)/1700. The turbulent branch is pinned at
		the boundary here, unlike the friction-factor blend which tracks
		the actual Re. Kept as-is to match the reference model.
*/
func CalculateNusseltNumber(reynolds, prandtl float64) float64 {
	if reynolds < 2300.0 {
		// Laminar flow - constant Nusselt for fully developed flow
		return 3.66
	} else if reynolds > 4000.0 {
		// Turbulent flow - Dittus-Boelter correlation (heating)
		return 0.023 * math.Pow(reynolds, 0.8) * math.Pow(prandtl, 0.4)
	}
	// Transition region - interpolate
	nuLam := 3.66
	nuTurb := 0.023 * math.Pow(4000.0, 0.8) * math.Pow(prandtl, 0.4)
	return nuLam + (nuTurb-nuLam)*(reynolds-2300.0)/1700.0
}

/*
Calculate the convective heat transfer coefficient.

	Args:
		reynolds: Reynolds number
		diameter: hydraulic diameter, m
		temperature: coolant temperature, K

	Returns:
		heat transfer coefficient, W/(m2 K)

	Notes:
		h = Nu * k / D.
*/
func CalculateHeatTransferCoefficient(reynolds, diameter, temperature float64) float64 {
	prandtl := CalculatePrandtlNumber(temperature)
	nusselt := CalculateNusseltNumber(reynolds, prandtl)
	thermalCond := SodiumThermalConductivity(temperature)
	return nusselt * thermalCond / diameter
}

/*
Calculate the heat flux through a heat transfer surface.

	Args:
		power: total thermal power, W
		surfaceArea: heat transfer surface area, m2

	Returns:
		heat flux, W/m2
*/
func CalculateHeatFlux(power, surfaceArea float64) float64 {
	return power / surfaceArea
}

/*
Calculate the surface area required to remove the given power.

	Args:
		power: total thermal power, W
		heatTransferCoef: heat transfer coefficient, W/(m2 K)
		tempDifference: surface-to-fluid temperature difference, K

	Returns:
		required surface area, m2
*/
func CalculateRequiredArea(power, heatTransferCoef, tempDifference float64) float64 {
	return power / (heatTransferCoef * tempDifference)
}

// HeatTransferState holds the convective heat transfer quantities derived
// from the flow state and the fluid state.
type HeatTransferState struct {
	PrandtlNumber float64 // dimensionless
	NusseltNumber float64 // dimensionless
	Coefficient   float64 // W/(m2 K)
}

/*
Derive the convective heat transfer state for the given operating point.

	Args:
		reynolds: Reynolds number
		diameter: hydraulic diameter, m
		temperature: coolant temperature, K

	Returns:
		HeatTransferState with Prandtl number, Nusselt number and
		heat transfer coefficient
*/
func AnalyzeHeatTransfer(reynolds, diameter, temperature float64) HeatTransferState {
	prandtl := CalculatePrandtlNumber(temperature)
	nusselt := CalculateNusseltNumber(reynolds, prandtl)
	return HeatTransferState{
		PrandtlNumber: prandtl,
		NusseltNumber: nusselt,
		Coefficient:   nusselt * SodiumThermalConductivity(temperature) / diameter,
	}
}
