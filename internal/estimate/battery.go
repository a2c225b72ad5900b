package estimate

// SizeBattery converts a backup-time requirement into amp-hours.
//
//  1. Hourly load (kWh/h) = dailyKWh / operatingHours
//  2. Backup energy (kWh) = hourly load × backupHours
//  3. Capacity (Ah) = Wh / (systemVoltage × depthOfDischarge × inverterEfficiency)
//
// A non-positive operatingHours or denominator yields 0 for the affected
// figures instead of dividing by zero.
func SizeBattery(dailyKWh, operatingHours, backupHours, systemVoltage, depthOfDischarge, inverterEfficiency float64) BatteryResult {
	out := BatteryResult{BackupHours: backupHours}
	if operatingHours <= 0 || backupHours <= 0 {
		return out
	}
	out.BackupEnergyKWh = (dailyKWh / operatingHours) * backupHours
	out.BackupEnergyWh = out.BackupEnergyKWh * 1000

	denom := systemVoltage * depthOfDischarge * inverterEfficiency
	if denom <= 0 {
		return out
	}
	out.CapacityAh = out.BackupEnergyWh / denom
	return out
}
