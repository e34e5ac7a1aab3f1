// Package study runs parameter sweeps over reactor configurations: one
// operating parameter is varied across a grid while the rest of the
// configuration is held fixed, and the full calculation pipeline is run at
// every grid point.
package study

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"splinther"
	"splinther/config"
)

// Row is one grid point of a sweep: the varied parameter value, the derived
// performance quantities, and whether the configuration passed validation.
// Invalid configurations are flagged, not dropped; their derived values are
// whatever the pipeline produced (possibly non-finite).
type Row struct {
	Parameter               float64 `csv:"parameter"`
	OutletTemperature       float64 `csv:"outlet_temperature"`
	PressureDrop            float64 `csv:"pressure_drop"`
	ReynoldsNumber          float64 `csv:"reynolds_number"`
	HeatTransferCoefficient float64 `csv:"heat_transfer_coefficient"`
	MaxFuelTemperature      float64 `csv:"max_fuel_temperature"`
	Valid                   bool    `csv:"valid"`
}

// Sweep holds the rows of one parameter sweep.
type Sweep struct {
	Parameter string // name of the varied parameter
	Rows      []Row
}

/*
Sweep the reactor thermal power.

	Args:
		base: configuration providing the fixed parameters
		lo, hi: sweep range, W
		n: number of grid points (n >= 2)

	Returns:
		Sweep over an evenly spaced power grid
*/
func PowerSweep(base config.Reactor, lo, hi float64, n int) Sweep {
	return runSweep("reactor_power", base, lo, hi, n, func(r *config.Reactor, v float64) {
		r.ReactorPower = v
	})
}

/*
Sweep the coolant mass flow rate.

	Args:
		base: configuration providing the fixed parameters
		lo, hi: sweep range, kg/s
		n: number of grid points (n >= 2)
*/
func FlowRateSweep(base config.Reactor, lo, hi float64, n int) Sweep {
	return runSweep("coolant_flow_rate", base, lo, hi, n, func(r *config.Reactor, v float64) {
		r.CoolantFlowRate = v
	})
}

/*
Sweep the core diameter.

	Args:
		base: configuration providing the fixed parameters
		lo, hi: sweep range, m
		n: number of grid points (n >= 2)
*/
func DiameterSweep(base config.Reactor, lo, hi float64, n int) Sweep {
	return runSweep("core_diameter", base, lo, hi, n, func(r *config.Reactor, v float64) {
		r.CoreDiameter = v
	})
}

func runSweep(name string, base config.Reactor, lo, hi float64, n int, set func(*config.Reactor, float64)) Sweep {
	grid := floats.Span(make([]float64, n), lo, hi)

	rows := make([]Row, 0, n)
	for _, v := range grid {
		r := base
		set(&r, v)

		errs, _ := config.Validate(r)
		result := splinther.NewReactorCalculator(r.ToConfig()).Calculate()

		rows = append(rows, Row{
			Parameter:               v,
			OutletTemperature:       result.OutletTemperature,
			PressureDrop:            result.PressureDrop,
			ReynoldsNumber:          result.ReynoldsNumber,
			HeatTransferCoefficient: result.HeatTransferCoefficient,
			MaxFuelTemperature:      result.MaxFuelTemperature,
			Valid:                   len(errs) == 0,
		})
	}

	return Sweep{Parameter: name, Rows: rows}
}

// Summary holds the range and mean of one swept quantity.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
}

/*
Summarize one derived quantity across the sweep.

	Args:
		sel: selector for the quantity, e.g.
			func(r Row) float64 { return r.OutletTemperature }

	Returns:
		min, max and mean of the selected column
*/
func (s Sweep) Summarize(sel func(Row) float64) (Summary, error) {
	if len(s.Rows) == 0 {
		return Summary{}, fmt.Errorf("summarize %s: empty sweep", s.Parameter)
	}

	col := make([]float64, len(s.Rows))
	for i, row := range s.Rows {
		col[i] = sel(row)
	}

	return Summary{
		Min:  floats.Min(col),
		Max:  floats.Max(col),
		Mean: stat.Mean(col, nil),
	}, nil
}

// WriteCSV writes the sweep rows as CSV.
func (s Sweep) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(s.Rows, w); err != nil {
		return fmt.Errorf("write %s sweep: %w", s.Parameter, err)
	}
	return nil
}
