package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sun-to-sort/internal/data"
	"sun-to-sort/internal/model"
)

const machineScenario = `
name: test line
demand:
  machine_count: 5
  power_per_machine_watts: 500
  work_hours_per_day: 8
solar:
  sun_hours_per_day: 5
  panel_power_watts: 300
  derating_factor: 0.75
economics:
  electricity_price_per_kwh: 4.5
  installation_cost: 150000
  co2_kg_per_kwh: 0.43
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", machineScenario)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test line", c.Name)
	assert.Equal(t, "machine", c.Demand.Mode)
	assert.Equal(t, "ceil", c.Solar.Rounding)
	assert.Equal(t, DefaultDaysInMonth, c.Economics.DaysInMonth)
	assert.Equal(t, model.DefaultProjectionYears, c.Economics.ProjectionYears)
	assert.Nil(t, c.Solar.InstalledPanels)

	p := c.ToParams()
	assert.Equal(t, model.DemandMachine, p.Mode)
	assert.Equal(t, 5, p.MachineCount)
	assert.Equal(t, 0.43, p.CO2KgPerKWh)
	assert.NoError(t, p.Validate())
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "demand: [")
		_, err := Load(path)
		assert.ErrorContains(t, err, "parse")
	})

	t.Run("co2 factor has no default", func(t *testing.T) {
		path := writeFile(t, dir, "noco2.yaml", `
demand: {machine_count: 1, power_per_machine_watts: 100, work_hours_per_day: 8}
solar: {sun_hours_per_day: 5, panel_power_watts: 300, derating_factor: 0.75}
economics: {electricity_price_per_kwh: 4.5}
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "co2_kg_per_kwh")
	})

	t.Run("out of range", func(t *testing.T) {
		path := writeFile(t, dir, "range.yaml", machineScenario+"\nbattery:\n  backup_hours: 2\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config invalid")
		assert.Contains(t, err.Error(), "system_voltage")
	})
}

func TestLoad_PresetMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "presets/base.yaml", machineScenario)
	path := writeFile(t, dir, "scenario.yaml", `
preset_file: presets/base.yaml
name: override
demand:
  machine_count: 8
solar:
  installed_panels: 40
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "override", c.Name)
	assert.Empty(t, c.PresetFile)
	assert.Equal(t, 8, c.Demand.MachineCount)
	assert.Equal(t, 500.0, c.Demand.PowerPerMachineWatts)
	require.NotNil(t, c.Solar.InstalledPanels)
	assert.Equal(t, 40, *c.Solar.InstalledPanels)
	require.NotNil(t, c.Economics.InstallationCost)
	assert.Equal(t, 150000.0, *c.Economics.InstallationCost)
}

func TestLoadUnchecked_MissingPreset(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", "preset_file: nope.yaml\n")
	_, err := LoadUnchecked(path)
	assert.ErrorContains(t, err, "preset_file")
}

func TestLoad_WasteStreamsUseCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "catalog.yaml", "categories:\n  - name: plastic\n    watt_hours_per_kg: 50\n")
	path := writeFile(t, dir, "waste.yaml", `
waste_catalog_file: catalog.yaml
demand:
  mode: waste
  work_hours_per_day: 10
  waste_streams:
    - {category: plastic, kg_per_day: 400}
    - {category: paper, kg_per_day: 100}
    - {category: metal, kg_per_day: 10, watt_hours_per_kg: 70}
    - {category: textiles, kg_per_day: 20}
solar: {sun_hours_per_day: 5, panel_power_watts: 400, derating_factor: 0.8}
economics: {electricity_price_per_kwh: 4.5, installation_cost: 1000, co2_kg_per_kwh: 0.45}
`)

	c, err := Load(path)
	require.NoError(t, err)

	got := []float64{}
	for _, s := range c.Demand.WasteStreams {
		require.NotNil(t, s.WattHoursPerKg)
		got = append(got, *s.WattHoursPerKg)
	}
	other := data.DefaultCatalog().Intensity(data.FallbackCategory)
	assert.Equal(t, []float64{50, 30, 70, other}, got)
	assert.Equal(t, model.DemandWaste, c.ToParams().Mode)
}

func TestToParams_CopiesMutableFields(t *testing.T) {
	n := 12
	c := &Config{
		Demand: DemandConfig{WasteStreams: []WasteStreamConfig{{Category: "paper", KgPerDay: 10, WattHoursPerKg: Float(5)}}},
		Solar:  SolarConfig{InstalledPanels: &n},
	}
	p := c.ToParams()

	n = 99
	c.Demand.WasteStreams[0].KgPerDay = 1000

	require.NotNil(t, p.InstalledPanels)
	assert.Equal(t, 12, *p.InstalledPanels)
	assert.Equal(t, 10.0, p.WasteStreams[0].KgPerDay)
}

func TestMergeScenario(t *testing.T) {
	installed := 30
	base := Config{
		Name:       "base",
		PresetFile: "x.yaml",
		Demand: DemandConfig{
			Mode:         "waste",
			WasteStreams: []WasteStreamConfig{{Category: "paper", KgPerDay: 100}},
		},
		Solar:     SolarConfig{SunHoursPerDay: 5, PanelPowerWatts: 300},
		Economics: EconomicsConfig{ElectricityPricePerKWh: 4, InstallationCost: Float(1000)},
		Battery:   BatteryConfig{SystemVoltage: 24},
	}

	t.Run("zero override keeps base", func(t *testing.T) {
		got := MergeScenario(base, Config{})
		assert.Equal(t, "base", got.Name)
		assert.Empty(t, got.PresetFile)
		assert.Equal(t, base.Demand.WasteStreams, got.Demand.WasteStreams)
		assert.Equal(t, base.Solar, got.Solar)
		assert.Equal(t, base.Economics, got.Economics)

		got.Demand.WasteStreams[0].KgPerDay = 1
		assert.Equal(t, 100.0, base.Demand.WasteStreams[0].KgPerDay)
	})

	t.Run("non-zero override wins", func(t *testing.T) {
		got := MergeScenario(base, Config{
			Demand: DemandConfig{
				Mode:         "machine",
				MachineCount: 3,
				WasteStreams: []WasteStreamConfig{{Category: "glass", KgPerDay: 5}},
			},
			Solar:     SolarConfig{InstalledPanels: &installed, Rounding: "exact"},
			Economics: EconomicsConfig{CO2KgPerKWh: 0.45, DaysInMonth: 31},
			Battery:   BatteryConfig{BackupHours: Float(3), DepthOfDischarge: 0.5},
		})

		assert.Equal(t, "machine", got.Demand.Mode)
		assert.Equal(t, 3, got.Demand.MachineCount)
		assert.Equal(t, []WasteStreamConfig{{Category: "glass", KgPerDay: 5}}, got.Demand.WasteStreams)
		assert.Equal(t, 5.0, got.Solar.SunHoursPerDay)
		require.NotNil(t, got.Solar.InstalledPanels)
		assert.Equal(t, 30, *got.Solar.InstalledPanels)
		assert.Equal(t, "exact", got.Solar.Rounding)
		assert.Equal(t, 0.45, got.Economics.CO2KgPerKWh)
		assert.Equal(t, 31, got.Economics.DaysInMonth)
		assert.Equal(t, Float(1000), got.Economics.InstallationCost)
		assert.Equal(t, BatteryConfig{BackupHours: Float(3), SystemVoltage: 24, DepthOfDischarge: 0.5}, got.Battery)
	})
}

func TestLoad_ExplicitZerosOverridePreset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "presets/base.yaml", machineScenario+`
battery:
  backup_hours: 2
  system_voltage: 48
  depth_of_discharge: 0.8
  inverter_efficiency: 0.9
`)
	path := writeFile(t, dir, "scenario.yaml", `
preset_file: presets/base.yaml
economics:
  installation_cost: 0
battery:
  backup_hours: 0
`)

	c, err := Load(path)
	require.NoError(t, err)

	p := c.ToParams()
	assert.Equal(t, 0.0, p.InstallationCost)
	assert.Equal(t, 0.0, p.BackupHours)
	assert.False(t, p.BackupRequested())
	assert.Equal(t, 48.0, p.SystemVoltage)
}

func TestApplyDefaults_ExplicitZeroIntensityKept(t *testing.T) {
	c := &Config{Demand: DemandConfig{
		Mode: "waste",
		WasteStreams: []WasteStreamConfig{
			{Category: "plastic", KgPerDay: 100, WattHoursPerKg: Float(0)},
			{Category: "plastic", KgPerDay: 100},
		},
	}}
	c.ApplyDefaults(data.DefaultCatalog())

	p := c.ToParams()
	assert.Equal(t, 0.0, p.WasteStreams[0].WattHoursPerKg)
	assert.Equal(t, data.DefaultCatalog().Intensity("plastic"), p.WasteStreams[1].WattHoursPerKg)
}

func TestMergeScenario_ZeroPointersOverride(t *testing.T) {
	base := Config{
		Demand:    DemandConfig{WasteStreams: []WasteStreamConfig{{Category: "paper", KgPerDay: 100, WattHoursPerKg: Float(30)}}},
		Economics: EconomicsConfig{InstallationCost: Float(150000)},
		Battery:   BatteryConfig{BackupHours: Float(2)},
	}

	got := MergeScenario(base, Config{
		Demand:    DemandConfig{WasteStreams: []WasteStreamConfig{{Category: "paper", KgPerDay: 100, WattHoursPerKg: Float(0)}}},
		Economics: EconomicsConfig{InstallationCost: Float(0)},
		Battery:   BatteryConfig{BackupHours: Float(0)},
	})

	assert.Equal(t, Float(0), got.Economics.InstallationCost)
	assert.Equal(t, Float(0), got.Battery.BackupHours)
	assert.Equal(t, Float(0), got.Demand.WasteStreams[0].WattHoursPerKg)

	*got.Economics.InstallationCost = 5
	*got.Battery.BackupHours = 5
	assert.Equal(t, 150000.0, *base.Economics.InstallationCost)
	assert.Equal(t, 2.0, *base.Battery.BackupHours)

	kept := MergeScenario(base, Config{})
	*kept.Demand.WasteStreams[0].WattHoursPerKg = 1
	assert.Equal(t, 30.0, *base.Demand.WasteStreams[0].WattHoursPerKg)
}

func TestExampleScenarios(t *testing.T) {
	for _, path := range []string{
		"../../examples/config.yaml",
		"../../examples/presets/small_sorting_line.yaml",
		"../../examples/presets/mixed_recycling.yaml",
	} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := Load(path)
			assert.NoError(t, err)
		})
	}
}
