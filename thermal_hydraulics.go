package splinther

import "math"

// Core energy balance and fuel temperature estimate.

/*
Calculate the coolant outlet temperature from the lumped energy balance.

	Args:
		inletTemp: inlet temperature, K
		power: reactor thermal power, W
		flowRate: mass flow rate, kg/s

	Returns:
		outlet temperature, K

	Notes:
		Q = m * cp * dT with constant specific heat, so
		T_out = T_in + Q / (m * cp).
*/
func CalculateOutletTemperature(inletTemp, power, flowRate float64) float64 {
	deltaT := power / (flowRate * SodiumCp)
	return inletTemp + deltaT
}

/*
Estimate the maximum fuel temperature in the core.

	Args:
		coolantTemp: coolant temperature, K
		power: reactor thermal power, W
		heatTransferCoef: heat transfer coefficient, W/(m2 K)
		coreHeight: core height, m
		coreDiameter: core diameter, m

	Returns:
		maximum fuel temperature, K

	Notes:
		Heat flux over the cylindrical core surface q" = P / (pi * D * H),
		film temperature rise dT = q" / h, then the empirical factor 2.5
		for the combined pellet/gap/clad resistance. An approximation,
		not a radial conduction solve.
*/
func CalculateMaxFuelTemperature(coolantTemp, power, heatTransferCoef, coreHeight, coreDiameter float64) float64 {
	surfaceArea := math.Pi * coreDiameter * coreHeight
	heatFlux := CalculateHeatFlux(power, surfaceArea)

	tempRise := heatFlux / heatTransferCoef

	return coolantTemp + tempRise*FuelTempRiseFactor
}

/*
Calculate the average coolant temperature over the core.

	Args:
		inletTemp: inlet temperature, K
		outletTemp: outlet temperature, K

	Returns:
		average coolant temperature, K
*/
func CalculateAverageCoolantTemp(inletTemp, outletTemp float64) float64 {
	return (inletTemp + outletTemp) / 2.0
}
