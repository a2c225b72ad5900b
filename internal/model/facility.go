package model

import (
	"errors"
	"fmt"
)

// DemandMode selects which demand model drives energy_used_per_day.
// Keep these values stable; they appear in config files and API payloads.
type DemandMode string

const (
	// DemandMachine derives demand from machine count × power × hours.
	// The zero value of DemandMode behaves as DemandMachine.
	DemandMachine DemandMode = "machine"
	// DemandWaste derives demand from per-category throughput × energy intensity.
	DemandWaste DemandMode = "waste"
)

// PanelRounding is the policy used to turn the real-valued panel requirement
// into PanelsNeeded.
type PanelRounding string

const (
	// RoundCeil rounds up to a whole panel. This is the default.
	RoundCeil PanelRounding = "ceil"
	// RoundExact keeps the plain division (theoretical minimum).
	RoundExact PanelRounding = "exact"
)

// DefaultProjectionYears is the horizon used when ProjectionYears is 0.
const DefaultProjectionYears = 10

// FacilityParameters is one immutable snapshot of facility, solar, economic and
// battery inputs for a single estimation run.
// Units:
// - power: W
// - hours: h/day
// - price: currency/kWh
// - co2: kg/kWh
// - DeratingFactor, DepthOfDischarge, InverterEfficiency: fractions
type FacilityParameters struct {
	Mode DemandMode

	// Machine-based demand.
	MachineCount         int
	PowerPerMachineWatts float64
	// WorkHoursPerDay is also the operating-hours base for battery sizing.
	WorkHoursPerDay float64

	// Waste-based demand.
	WasteStreams []WasteStreamEntry

	SunHoursPerDay  float64
	PanelPowerWatts float64
	DeratingFactor  float64
	// InstalledPanels is optional; nil means "size it for me".
	InstalledPanels *int
	Rounding        PanelRounding

	DaysInMonth int

	ElectricityPricePerKWh float64
	InstallationCost       float64
	CO2KgPerKWh            float64

	ProjectionYears int

	BackupHours        float64
	SystemVoltage      float64
	DepthOfDischarge   float64
	InverterEfficiency float64
}

// ActiveMode resolves the zero value to DemandMachine.
func (p FacilityParameters) ActiveMode() DemandMode {
	if p.Mode == "" {
		return DemandMachine
	}
	return p.Mode
}

// ActiveRounding resolves the zero value to RoundCeil.
func (p FacilityParameters) ActiveRounding() PanelRounding {
	if p.Rounding == "" {
		return RoundCeil
	}
	return p.Rounding
}

// Horizon returns the projection horizon in years.
func (p FacilityParameters) Horizon() int {
	if p.ProjectionYears <= 0 {
		return DefaultProjectionYears
	}
	return p.ProjectionYears
}

// BackupRequested reports whether battery sizing should run.
func (p FacilityParameters) BackupRequested() bool {
	return p.BackupHours > 0
}

// Validate enforces the documented input ranges. It is meant for the
// parameter-collection surfaces (config loader, API, CLI); the estimator
// itself trusts its input. All violations are reported together.
func (p FacilityParameters) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	switch p.ActiveMode() {
	case DemandMachine:
		if p.MachineCount < 1 {
			add("machine_count must be >= 1")
		}
		if p.PowerPerMachineWatts <= 0 {
			add("power_per_machine_watts must be > 0")
		}
	case DemandWaste:
		for i, s := range p.WasteStreams {
			if err := s.Validate(); err != nil {
				add("waste_streams[%d]: %w", i, err)
			}
		}
	default:
		add("mode must be %q or %q, got %q", DemandMachine, DemandWaste, p.Mode)
	}
	if p.WorkHoursPerDay < 1 || p.WorkHoursPerDay > 24 {
		add("work_hours_per_day must be in [1, 24]")
	}

	if p.SunHoursPerDay < 1 || p.SunHoursPerDay > 12 {
		add("sun_hours_per_day must be in [1, 12]")
	}
	if p.PanelPowerWatts <= 0 {
		add("panel_power_watts must be > 0")
	}
	if p.DeratingFactor < 0.5 || p.DeratingFactor > 1 {
		add("derating_factor must be in [0.5, 1.0]")
	}
	if p.InstalledPanels != nil && *p.InstalledPanels < 1 {
		add("installed_panels must be >= 1 when set")
	}
	switch p.ActiveRounding() {
	case RoundCeil, RoundExact:
	default:
		add("rounding must be %q or %q, got %q", RoundCeil, RoundExact, p.Rounding)
	}

	if p.DaysInMonth < 28 || p.DaysInMonth > 31 {
		add("days_in_month must be in [28, 31]")
	}
	if p.ElectricityPricePerKWh <= 0 {
		add("electricity_price_per_kwh must be > 0")
	}
	if p.InstallationCost < 0 {
		add("installation_cost must be >= 0")
	}
	if p.CO2KgPerKWh <= 0 {
		add("co2_kg_per_kwh must be > 0")
	}
	if p.ProjectionYears < 0 {
		add("projection_years must be >= 0")
	}

	if p.BackupHours < 0 {
		add("backup_hours must be >= 0")
	}
	if p.BackupRequested() {
		if p.SystemVoltage <= 0 {
			add("system_voltage must be > 0 when backup_hours > 0")
		}
		if p.DepthOfDischarge <= 0 || p.DepthOfDischarge > 1 {
			add("depth_of_discharge must be in (0, 1]")
		}
		if p.InverterEfficiency <= 0 || p.InverterEfficiency > 1 {
			add("inverter_efficiency must be in (0, 1]")
		}
	}

	return errors.Join(errs...)
}
