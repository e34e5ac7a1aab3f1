package splinther

import "strings"

// Physical constants and material properties for sodium-cooled reactor
// calculations.

// Specific heat capacity of liquid sodium, J/(kg K).
// Fink, J.K., Leibowitz, L. (1995). "Thermodynamic and Transport Properties
// of Sodium Liquid and Vapor".
const SodiumCp = 1270.0

// Empirical factor for fuel pellet temperature rise. Accounts for thermal
// resistance through fuel pellet, gap and cladding; typical values range
// 2.0-3.0 depending on geometry.
// Todreas, N.E., Kazimi, M.S. (2012). "Nuclear Systems Volume I".
const FuelTempRiseFactor = 2.5

// Base viscosity coefficient for liquid sodium, Pa s (Fink-Leibowitz
// correlation), and its temperature coefficient, 1/K.
const (
	SodiumViscosityBase     = 0.001
	SodiumViscosityTempCoef = -2.45e-4
)

// Gravitational acceleration per environment, m/s2.
const (
	GravityEarth = 9.81
	GravityMoon  = 1.62
	GravityMars  = 3.71
	GravitySpace = 0.0
)

/*
Get the gravitational acceleration for a named environment.

	Args:
		environment: environment name, matched case-insensitively
			("earth", "moon"/"lunar", "mars", "space"/"microgravity")

	Returns:
		gravitational acceleration, m/s2

	Notes:
		Unrecognized names fall back to Earth gravity.
*/
func GetGravity(environment string) float64 {
	switch strings.ToLower(environment) {
	case "earth":
		return GravityEarth
	case "moon", "lunar":
		return GravityMoon
	case "mars":
		return GravityMars
	case "space", "microgravity":
		return GravitySpace
	default:
		return GravityEarth
	}
}
