package config

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a preset and then applying a scenario's or a
// request's own values on top.
func MergeScenario(base, override Config) Config {
	out := base
	out.Demand.WasteStreams = copyStreams(base.Demand.WasteStreams)
	out.Economics.InstallationCost = copyFloat(base.Economics.InstallationCost)
	out.Battery.BackupHours = copyFloat(base.Battery.BackupHours)
	if base.Solar.InstalledPanels != nil {
		n := *base.Solar.InstalledPanels
		out.Solar.InstalledPanels = &n
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	// The preset reference itself is consumed by the merge.
	out.PresetFile = ""
	if override.WasteCatalogFile != "" {
		out.WasteCatalogFile = override.WasteCatalogFile
	}

	d := override.Demand
	if d.Mode != "" {
		out.Demand.Mode = d.Mode
	}
	if d.MachineCount != 0 {
		out.Demand.MachineCount = d.MachineCount
	}
	if d.PowerPerMachineWatts != 0 {
		out.Demand.PowerPerMachineWatts = d.PowerPerMachineWatts
	}
	if d.WorkHoursPerDay != 0 {
		out.Demand.WorkHoursPerDay = d.WorkHoursPerDay
	}
	// Streams are replaced as a whole, never merged entry by entry.
	if len(d.WasteStreams) > 0 {
		out.Demand.WasteStreams = copyStreams(d.WasteStreams)
	}

	s := override.Solar
	if s.SunHoursPerDay != 0 {
		out.Solar.SunHoursPerDay = s.SunHoursPerDay
	}
	if s.PanelPowerWatts != 0 {
		out.Solar.PanelPowerWatts = s.PanelPowerWatts
	}
	if s.DeratingFactor != 0 {
		out.Solar.DeratingFactor = s.DeratingFactor
	}
	if s.InstalledPanels != nil {
		n := *s.InstalledPanels
		out.Solar.InstalledPanels = &n
	}
	if s.Rounding != "" {
		out.Solar.Rounding = s.Rounding
	}

	e := override.Economics
	if e.DaysInMonth != 0 {
		out.Economics.DaysInMonth = e.DaysInMonth
	}
	if e.ElectricityPricePerKWh != 0 {
		out.Economics.ElectricityPricePerKWh = e.ElectricityPricePerKWh
	}
	// Fields where 0 is meaningful are pointers: presence, not value, decides.
	if e.InstallationCost != nil {
		out.Economics.InstallationCost = copyFloat(e.InstallationCost)
	}
	if e.CO2KgPerKWh != 0 {
		out.Economics.CO2KgPerKWh = e.CO2KgPerKWh
	}
	if e.ProjectionYears != 0 {
		out.Economics.ProjectionYears = e.ProjectionYears
	}

	b := override.Battery
	if b.BackupHours != nil {
		out.Battery.BackupHours = copyFloat(b.BackupHours)
	}
	if b.SystemVoltage != 0 {
		out.Battery.SystemVoltage = b.SystemVoltage
	}
	if b.DepthOfDischarge != 0 {
		out.Battery.DepthOfDischarge = b.DepthOfDischarge
	}
	if b.InverterEfficiency != 0 {
		out.Battery.InverterEfficiency = b.InverterEfficiency
	}
	return out
}

func copyStreams(in []WasteStreamConfig) []WasteStreamConfig {
	if in == nil {
		return nil
	}
	out := make([]WasteStreamConfig, len(in))
	for i, st := range in {
		st.WattHoursPerKg = copyFloat(st.WattHoursPerKg)
		out[i] = st
	}
	return out
}
