package splinther

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSodiumThermalConductivity(t *testing.T) {
	k := SodiumThermalConductivity(600.0)
	assert.Greater(t, k, 60.0)
	assert.Less(t, k, 90.0)
}

func TestCalculatePrandtlNumber(t *testing.T) {
	// Liquid sodium has a very low Prandtl number
	pr := CalculatePrandtlNumber(600.0)
	assert.Greater(t, pr, 0.001)
	assert.Less(t, pr, 0.1)
}

func TestCalculateNusseltNumber(t *testing.T) {
	t.Run("laminar constant independent of Pr", func(t *testing.T) {
		for _, pr := range []float64{0.004, 0.01, 0.7, 10.0} {
			assert.Equal(t, 3.66, CalculateNusseltNumber(1000.0, pr))
			assert.Equal(t, 3.66, CalculateNusseltNumber(100.0, pr))
		}
	})

	t.Run("turbulent Dittus-Boelter", func(t *testing.T) {
		nu := CalculateNusseltNumber(50000.0, 0.01)
		expected := 0.023 * math.Pow(50000.0, 0.8) * math.Pow(0.01, 0.4)
		assert.InDelta(t, expected, nu, 1e-9)
		assert.Greater(t, nu, 10.0)
	})

	t.Run("transition blend pins the turbulent branch at Re=4000", func(t *testing.T) {
		pr := 0.005
		re := 3000.0
		nuTurb := 0.023 * math.Pow(4000.0, 0.8) * math.Pow(pr, 0.4)
		expected := 3.66 + (nuTurb-3.66)*(re-2300.0)/1700.0
		assert.InDelta(t, expected, CalculateNusseltNumber(re, pr), 1e-12)
	})
}

func TestCalculateHeatTransferCoefficient(t *testing.T) {
	// Thousands of W/(m2 K) for a liquid metal
	h := CalculateHeatTransferCoefficient(50000.0, 0.5, 600.0)
	assert.Greater(t, h, 1000.0)
	assert.Less(t, h, 100000.0)
}

func TestCalculateHeatFlux(t *testing.T) {
	assert.Equal(t, 1e5, CalculateHeatFlux(1e6, 10.0))
}

func TestCalculateRequiredArea(t *testing.T) {
	assert.Equal(t, 1.0, CalculateRequiredArea(1e6, 10000.0, 100.0))
}

func TestAnalyzeHeatTransfer(t *testing.T) {
	state := AnalyzeHeatTransfer(50000.0, 0.5, 600.0)

	assert.Equal(t, CalculatePrandtlNumber(600.0), state.PrandtlNumber)
	assert.Equal(t, CalculateNusseltNumber(50000.0, state.PrandtlNumber), state.NusseltNumber)
	assert.InDelta(t, CalculateHeatTransferCoefficient(50000.0, 0.5, 600.0), state.Coefficient, 1e-9)
}
