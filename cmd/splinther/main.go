package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"splinther"
	"splinther/config"
	"splinther/study"
)

/*
Run one steady-state calculation for the given configuration file.

	Args:
		inputPath: path to the reactor configuration file (YAML or JSON)
		outputDir: output folder for exported files
		format: export format for the result file ("json" or "yaml")
		exportResult: whether to write the result file
		sweep: optional parameter sweep to run and save as CSV
			("power", "flow", "diameter" or "")
*/
func run(inputPath, outputDir, format string, exportResult bool, sweep string) {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		os.Mkdir(outputDir, 0755)
	}
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", outputDir)
	}

	log.Infof("loading reactor configuration from `%s`", inputPath)
	reactor, err := config.Load(inputPath)
	if err != nil {
		log.Fatal(err)
	}

	errs, warns := config.Validate(reactor)
	for _, w := range warns {
		log.Warn(w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			log.Error(e)
		}
		log.Fatal("configuration rejected")
	}

	calc := splinther.NewReactorCalculator(reactor.ToConfig())
	result := calc.Calculate()

	log.WithFields(log.Fields{
		"outlet_temperature_K":        result.OutletTemperature,
		"pressure_drop_Pa":            result.PressureDrop,
		"reynolds_number":             result.ReynoldsNumber,
		"heat_transfer_coef_W_m2K":    result.HeatTransferCoefficient,
		"max_fuel_temperature_K":      result.MaxFuelTemperature,
		"turbulent":                   splinther.IsTurbulent(result.ReynoldsNumber),
		"average_coolant_temperature": splinther.CalculateAverageCoolantTemp(reactor.CoolantInletTemp, result.OutletTemperature),
	}).Info("calculation complete")

	if exportResult {
		resultPath := filepath.Join(outputDir, "result."+format)
		log.Infof("saving calculation result to `%s`", resultPath)

		var exportErr error
		switch format {
		case "yaml":
			exportErr = config.ExportYAML(resultPath, config.FromResult(result))
		default:
			exportErr = config.ExportJSON(resultPath, config.FromResult(result))
		}
		if exportErr != nil {
			log.Fatal(exportErr)
		}
	}

	if sweep != "" {
		runSweep(sweep, reactor, outputDir)
	}
}

/*
Run a parameter sweep around the loaded configuration and save it as CSV.

	Args:
		name: which parameter to sweep ("power", "flow" or "diameter")
		reactor: the base configuration
		outputDir: output folder for the CSV file
*/
func runSweep(name string, reactor config.Reactor, outputDir string) {
	var s study.Sweep
	switch name {
	case "power":
		s = study.PowerSweep(reactor, 0.5*reactor.ReactorPower, 2.0*reactor.ReactorPower, 21)
	case "flow":
		s = study.FlowRateSweep(reactor, 0.5*reactor.CoolantFlowRate, 2.0*reactor.CoolantFlowRate, 21)
	case "diameter":
		s = study.DiameterSweep(reactor, 0.5*reactor.CoreDiameter, 2.0*reactor.CoreDiameter, 21)
	default:
		log.Fatalf("unknown sweep `%s` (want power, flow or diameter)", name)
	}

	sweepPath := filepath.Join(outputDir, "sweep_"+s.Parameter+".csv")
	log.Infof("saving %s sweep to `%s`", s.Parameter, sweepPath)

	file, err := os.Create(sweepPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := s.WriteCSV(file); err != nil {
		log.Fatal(err)
	}

	sum, err := s.Summarize(func(r study.Row) float64 { return r.MaxFuelTemperature })
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"min_K":  sum.Min,
		"max_K":  sum.Max,
		"mean_K": sum.Mean,
	}).Infof("max fuel temperature over %s sweep", s.Parameter)
}

func main() {
	var input string
	flag.StringVar(&input, "input", "", "reactor configuration file (YAML or JSON)")

	var outputDir string
	flag.StringVar(&outputDir, "o", ".", "output folder")

	var format string
	flag.StringVar(&format, "format", "json", "result export format (json or yaml)")

	var exportResult bool
	flag.BoolVar(&exportResult, "export", false, "save the calculation result to the output folder")

	var sweep string
	flag.StringVar(&sweep, "sweep", "", "run a parameter sweep (power, flow or diameter)")

	var logLevel string
	flag.StringVar(&logLevel, "log", "info", "log level")

	flag.Parse()

	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if input == "" {
		flag.Usage()
		os.Exit(2)
	}

	run(input, outputDir, format, exportResult, sweep)
}
