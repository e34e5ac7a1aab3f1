package splinther

// Pressure drop through the reactor coolant system and pump sizing.

/*
Calculate the frictional pressure drop through the core.

	Args:
		flowRate: mass flow rate, kg/s
		length: flow path length (core height), m
		diameter: hydraulic diameter, m
		reynolds: Reynolds number
		temperature: coolant temperature for property evaluation, K

	Returns:
		pressure drop, Pa

	Notes:
		Darcy-Weisbach: dP = f * (L/D) * (rho * V^2 / 2).
*/
func CalculatePressureDrop(flowRate, length, diameter, reynolds, temperature float64) float64 {
	frictionFactor := CalculateFrictionFactor(reynolds)
	density := SodiumDensity(temperature)
	velocity := CalculateVelocity(flowRate, diameter, temperature)

	return frictionFactor * (length / diameter) * (density * velocity * velocity / 2.0)
}

/*
Calculate the pressure drop due to elevation change.

	Args:
		heightChange: elevation change, m (positive = upward)
		temperature: coolant temperature, K
		gravity: gravitational acceleration, m/s2 (see GetGravity)

	Returns:
		pressure drop, Pa

	Notes:
		dP = rho * g * dh. Gravity is injected so the same loop can be
		sized for earth, lunar or microgravity deployments.
*/
func CalculateElevationPressureDrop(heightChange, temperature, gravity float64) float64 {
	return SodiumDensity(temperature) * gravity * heightChange
}

/*
Calculate the pressure change due to flow acceleration or deceleration.

	Args:
		velocity1: initial velocity, m/s
		velocity2: final velocity, m/s
		temperature: coolant temperature, K

	Returns:
		pressure change, Pa (negative means a pressure rise)

	Notes:
		dP = rho * (V2^2 - V1^2) / 2.
*/
func CalculateAccelerationPressureDrop(velocity1, velocity2, temperature float64) float64 {
	density := SodiumDensity(temperature)
	return density * (velocity2*velocity2 - velocity1*velocity1) / 2.0
}

/*
Calculate the total system pressure drop.

	Args:
		frictionDrop: frictional pressure drop, Pa
		elevationDrop: elevation pressure drop, Pa
		accelerationDrop: acceleration pressure drop, Pa
		formLossCoefficient: K factor for form losses, dimensionless
		dynamicPressure: rho * V^2 / 2, Pa

	Returns:
		total pressure drop, Pa

	Notes:
		Pure summation, no clamping.
*/
func CalculateTotalPressureDrop(frictionDrop, elevationDrop, accelerationDrop, formLossCoefficient, dynamicPressure float64) float64 {
	return frictionDrop + elevationDrop + accelerationDrop + formLossCoefficient*dynamicPressure
}

/*
Calculate the pump power required to overcome a pressure drop.

	Args:
		pressureDrop: total pressure drop, Pa
		volumetricFlowRate: volumetric flow rate, m3/s
		efficiency: pump efficiency, (0, 1]; the caller must keep it
			positive, no divide-by-zero guard is imposed here

	Returns:
		required pump power, W
*/
func CalculatePumpPower(pressureDrop, volumetricFlowRate, efficiency float64) float64 {
	return pressureDrop * volumetricFlowRate / efficiency
}

// PressureDropBreakdown holds the additive pressure drop components for one
// operating point. The components are independently computable; Total sums
// them with the form-loss term.
type PressureDropBreakdown struct {
	Friction            float64 // Pa
	Elevation           float64 // Pa
	Acceleration        float64 // Pa
	FormLossCoefficient float64 // dimensionless
	DynamicPressure     float64 // Pa
}

// Total returns the summed pressure drop including the form-loss term.
func (b PressureDropBreakdown) Total() float64 {
	return CalculateTotalPressureDrop(b.Friction, b.Elevation, b.Acceleration, b.FormLossCoefficient, b.DynamicPressure)
}
