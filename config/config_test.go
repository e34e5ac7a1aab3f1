package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splinther"
)

func validReactor() Reactor {
	return Reactor{
		CoolantInletTemp: 600.0,
		CoolantFlowRate:  10.0,
		ReactorPower:     1e6,
		CoreHeight:       2.0,
		CoreDiameter:     0.5,
		Pressure:         1e7,
		Name:             "Test Reactor",
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reactor.yaml")
	doc := `coolant_inlet_temp: 600.0
coolant_flow_rate: 10.0
reactor_power: 1.0e6
core_height: 2.0
core_diameter: 0.5
pressure: 1.0e7
name: Demo Reactor
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600.0, r.CoolantInletTemp)
	assert.Equal(t, 1e6, r.ReactorPower)
	assert.Equal(t, "Demo Reactor", r.Name)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reactor.json")
	doc := `{
  "coolant_inlet_temp": 600.0,
  "coolant_flow_rate": 10.0,
  "reactor_power": 1e6,
  "core_height": 2.0,
  "core_diameter": 0.5,
  "pressure": 1e7
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, r.CoolantFlowRate)
	assert.Equal(t, 0.5, r.CoreDiameter)
	assert.Empty(t, r.Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load("reactor.toml")
	assert.ErrorContains(t, err, "unsupported configuration format")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestToConfigRoundTrip(t *testing.T) {
	r := validReactor()
	cfg := r.ToConfig()

	assert.Equal(t, splinther.ReactorConfig{
		CoolantInletTemp: 600.0,
		CoolantFlowRate:  10.0,
		ReactorPower:     1e6,
		CoreHeight:       2.0,
		CoreDiameter:     0.5,
		Pressure:         1e7,
	}, cfg)

	// Name/Description never reach the core and are lost on the way back
	back := FromConfig(cfg)
	back.Name = r.Name
	assert.Equal(t, r, back)
}

func TestValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		errs, warns := Validate(validReactor())
		assert.Empty(t, errs)
		assert.Empty(t, warns)
	})

	t.Run("out-of-range values are errors", func(t *testing.T) {
		r := validReactor()
		r.CoolantInletTemp = 100.0
		r.CoolantFlowRate = 0.0
		r.CoreDiameter = 50.0

		errs, _ := Validate(r)
		assert.Len(t, errs, 3)
	})

	t.Run("low temperature warns", func(t *testing.T) {
		r := validReactor()
		r.CoolantInletTemp = 350.0

		errs, warns := Validate(r)
		assert.Empty(t, errs)
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0], "unusually low")
	})

	t.Run("large temperature rise warns", func(t *testing.T) {
		r := validReactor()
		r.ReactorPower = 1e7 // dT = 1e7/(10*1270) = 787 K

		errs, warns := Validate(r)
		assert.Empty(t, errs)
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0], "large temperature rise")
	})
}

func TestValidateStrict(t *testing.T) {
	assert.NoError(t, ValidateStrict(validReactor()))

	// Warnings are errors in strict mode
	r := validReactor()
	r.CoolantInletTemp = 350.0
	err := ValidateStrict(r)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 1)
}

func TestExportJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	calc := splinther.NewReactorCalculator(validReactor().ToConfig())
	res := FromResult(calc.Calculate())

	jsonPath := filepath.Join(dir, "result.json")
	require.NoError(t, ExportJSON(jsonPath, res))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "outlet_temperature")

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, ExportYAML(yamlPath, validReactor()))

	back, err := LoadYAML(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, validReactor(), back)
}
