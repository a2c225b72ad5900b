package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sun-to-sort/internal/data"
	"sun-to-sort/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML). The same shape is accepted as
// JSON by the API.
type Config struct {
	Name string `yaml:"name" json:"name,omitempty"`
	// Optional: base scenario to merge under this one (e.g. examples/presets/*.yaml).
	// Fields set here override the preset.
	PresetFile string `yaml:"preset_file" json:"-"`
	// Optional: waste catalog overlay used to fill missing watt_hours_per_kg.
	WasteCatalogFile string `yaml:"waste_catalog_file" json:"-"`

	Demand    DemandConfig    `yaml:"demand" json:"demand"`
	Solar     SolarConfig     `yaml:"solar" json:"solar"`
	Economics EconomicsConfig `yaml:"economics" json:"economics"`
	Battery   BatteryConfig   `yaml:"battery" json:"battery"`
}

type DemandConfig struct {
	Mode                 string              `yaml:"mode" json:"mode,omitempty"`
	MachineCount         int                 `yaml:"machine_count" json:"machine_count,omitempty"`
	PowerPerMachineWatts float64             `yaml:"power_per_machine_watts" json:"power_per_machine_watts,omitempty"`
	WorkHoursPerDay      float64             `yaml:"work_hours_per_day" json:"work_hours_per_day,omitempty"`
	WasteStreams         []WasteStreamConfig `yaml:"waste_streams" json:"waste_streams,omitempty"`
}

type WasteStreamConfig struct {
	Category string  `yaml:"category" json:"category"`
	KgPerDay float64 `yaml:"kg_per_day" json:"kg_per_day"`
	// Unset means "use the catalog intensity for this category"; an explicit
	// 0 is kept.
	WattHoursPerKg *float64 `yaml:"watt_hours_per_kg" json:"watt_hours_per_kg,omitempty"`
}

type SolarConfig struct {
	SunHoursPerDay  float64 `yaml:"sun_hours_per_day" json:"sun_hours_per_day,omitempty"`
	PanelPowerWatts float64 `yaml:"panel_power_watts" json:"panel_power_watts,omitempty"`
	DeratingFactor  float64 `yaml:"derating_factor" json:"derating_factor,omitempty"`
	InstalledPanels *int    `yaml:"installed_panels" json:"installed_panels,omitempty"`
	Rounding        string  `yaml:"rounding" json:"rounding,omitempty"`
}

type EconomicsConfig struct {
	DaysInMonth            int      `yaml:"days_in_month" json:"days_in_month,omitempty"`
	ElectricityPricePerKWh float64  `yaml:"electricity_price_per_kwh" json:"electricity_price_per_kwh,omitempty"`
	InstallationCost       *float64 `yaml:"installation_cost" json:"installation_cost,omitempty"`
	CO2KgPerKWh            float64  `yaml:"co2_kg_per_kwh" json:"co2_kg_per_kwh,omitempty"`
	ProjectionYears        int      `yaml:"projection_years" json:"projection_years,omitempty"`
}

type BatteryConfig struct {
	// Unset and an explicit 0 both disable sizing, but only an explicit 0
	// overrides a preset's value.
	BackupHours        *float64 `yaml:"backup_hours" json:"backup_hours,omitempty"`
	SystemVoltage      float64  `yaml:"system_voltage" json:"system_voltage,omitempty"`
	DepthOfDischarge   float64  `yaml:"depth_of_discharge" json:"depth_of_discharge,omitempty"`
	InverterEfficiency float64  `yaml:"inverter_efficiency" json:"inverter_efficiency,omitempty"`
}

// DefaultDaysInMonth is the time base used when days_in_month is not set.
const DefaultDaysInMonth = 30

// Load reads, merges, defaults and validates a scenario file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	catalog, err := data.LoadCatalogOrDefault(resolveRelative(path, c.WasteCatalogFile))
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults(catalog)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges a scenario, but does not default or
// validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	// If preset_file is set, load it and merge in any explicit overrides from c.
	if c.PresetFile != "" {
		preset, err := loadFile(resolveRelative(path, c.PresetFile))
		if err != nil {
			return nil, fmt.Errorf("preset_file: %w", err)
		}
		merged := MergeScenario(*preset, *c)
		c = &merged
	}
	return c, nil
}

// ApplyDefaults fills unset fields. Waste streams without an explicit
// intensity take the catalog value for their category.
func (c *Config) ApplyDefaults(catalog *data.Catalog) {
	if c.Demand.Mode == "" {
		c.Demand.Mode = string(model.DemandMachine)
	}
	if c.Solar.Rounding == "" {
		c.Solar.Rounding = string(model.RoundCeil)
	}
	if c.Economics.DaysInMonth == 0 {
		c.Economics.DaysInMonth = DefaultDaysInMonth
	}
	if c.Economics.ProjectionYears == 0 {
		c.Economics.ProjectionYears = model.DefaultProjectionYears
	}
	if catalog == nil {
		catalog = data.DefaultCatalog()
	}
	for i := range c.Demand.WasteStreams {
		s := &c.Demand.WasteStreams[i]
		if s.WattHoursPerKg == nil {
			s.WattHoursPerKg = Float(catalog.Intensity(s.Category))
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToParams().Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// ToParams builds the immutable estimator input. The waste stream slice and
// installed panel count are copied so later edits to c do not leak into it.
func (c *Config) ToParams() model.FacilityParameters {
	streams := make([]model.WasteStreamEntry, 0, len(c.Demand.WasteStreams))
	for _, s := range c.Demand.WasteStreams {
		streams = append(streams, model.WasteStreamEntry{
			Category:       s.Category,
			KgPerDay:       s.KgPerDay,
			WattHoursPerKg: deref(s.WattHoursPerKg),
		})
	}
	var installed *int
	if c.Solar.InstalledPanels != nil {
		n := *c.Solar.InstalledPanels
		installed = &n
	}

	return model.FacilityParameters{
		Mode:                   model.DemandMode(c.Demand.Mode),
		MachineCount:           c.Demand.MachineCount,
		PowerPerMachineWatts:   c.Demand.PowerPerMachineWatts,
		WorkHoursPerDay:        c.Demand.WorkHoursPerDay,
		WasteStreams:           streams,
		SunHoursPerDay:         c.Solar.SunHoursPerDay,
		PanelPowerWatts:        c.Solar.PanelPowerWatts,
		DeratingFactor:         c.Solar.DeratingFactor,
		InstalledPanels:        installed,
		Rounding:               model.PanelRounding(c.Solar.Rounding),
		DaysInMonth:            c.Economics.DaysInMonth,
		ElectricityPricePerKWh: c.Economics.ElectricityPricePerKWh,
		InstallationCost:       deref(c.Economics.InstallationCost),
		CO2KgPerKWh:            c.Economics.CO2KgPerKWh,
		ProjectionYears:        c.Economics.ProjectionYears,
		BackupHours:            deref(c.Battery.BackupHours),
		SystemVoltage:          c.Battery.SystemVoltage,
		DepthOfDischarge:       c.Battery.DepthOfDischarge,
		InverterEfficiency:     c.Battery.InverterEfficiency,
	}
}

// Float returns a pointer to v, for setting optional fields in code.
func Float(v float64) *float64 {
	return &v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

func loadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// resolveRelative prefers interpreting ref relative to the directory of
// base, but falls back to ref as given (relative to cwd) if that doesn't exist.
func resolveRelative(base, ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	cand := filepath.Join(filepath.Dir(base), ref)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return ref
}
