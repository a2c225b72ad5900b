package main

import (
	"fmt"
	"io"

	"sun-to-sort/internal/analysis"
	"sun-to-sort/internal/data"
	"sun-to-sort/internal/demand"
	"sun-to-sort/internal/estimate"
	"sun-to-sort/internal/model"

	json "github.com/goccy/go-json"
)

func writeJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func printSummary(w io.Writer, name string, p model.FacilityParameters, r estimate.Result) {
	if name != "" {
		fmt.Fprintf(w, "Scenario: %s\n", name)
	}
	fmt.Fprintf(w, "Demand mode:        %s\n", r.Mode)
	fmt.Fprintf(w, "Energy used:        %.2f kWh/day, %.2f kWh/month\n", r.EnergyUsedPerDayKWh, r.EnergyUsedPerMonthKWh)
	fmt.Fprintf(w, "Energy per panel:   %.3f kWh/day\n", r.EnergyPerPanelPerDayKWh)
	fmt.Fprintf(w, "Panels needed:      %g (exact %.2f, rounding %s)\n", r.PanelsNeeded, r.PanelsNeededExact, r.Rounding)
	if r.InstalledPanels != nil {
		fmt.Fprintf(w, "Installed panels:   %d\n", *r.InstalledPanels)
	}
	fmt.Fprintf(w, "Actual production:  %.2f kWh/day, %.2f kWh/month\n", r.ActualProductionPerDayKWh, r.ActualProductionPerMonthKWh)
	fmt.Fprintf(w, "Surplus/deficit:    %.2f kWh/day, %.2f kWh/month\n", r.SurplusPerDayKWh, r.SurplusPerMonthKWh)
	fmt.Fprintf(w, "System status:      %s\n", r.Status)
	fmt.Fprintf(w, "Cost savings:       %s/month, %s/year\n", estimate.FormatMoney(r.CostSavingsPerMonth), estimate.FormatMoney(r.CostSavingsPerYear))
	fmt.Fprintf(w, "Payback period:     %s years\n", r.PaybackLabel())
	fmt.Fprintf(w, "CO2 saved:          %.2f kg/month, %.2f kg/year\n", r.CO2SavedPerMonthKg, r.CO2SavedPerYearKg)

	if r.Battery != nil {
		fmt.Fprintf(w, "Battery backup:     %.1f h, %.2f kWh, %.2f Ah\n", r.Battery.BackupHours, r.Battery.BackupEnergyKWh, r.Battery.CapacityAh)
	}

	if wm, ok := demand.For(p).(demand.Waste); ok && len(wm.Streams) > 0 {
		fmt.Fprintln(w, "\nWaste breakdown:")
		for _, b := range wm.Breakdown() {
			fmt.Fprintf(w, "  %-12s %10.1f kg/day %10.2f kWh/day\n", b.Category, b.KgPerDay, b.KWhDay)
		}
	}

	if len(r.Projection) > 0 {
		fmt.Fprintf(w, "\nCumulative savings over %d years (installation %s):\n", r.ProjectionYears, estimate.FormatMoney(p.InstallationCost))
		for _, pt := range r.Projection {
			fmt.Fprintf(w, "  year %-3d %14s\n", pt.Year, estimate.FormatMoney(pt.CumulativeSavings))
		}
		if r.PaybackMarker != nil {
			fmt.Fprintf(w, "  break-even at year %.2f\n", r.PaybackMarker.Year)
		}
	}
}

func printComparison(w io.Writer, ranked []analysis.RankedComparison) {
	fmt.Fprintf(w, "%-4s %-20s %-8s %-14s %-10s %-14s\n", "rank", "name", "panels", "status", "payback", "savings/yr")
	for _, c := range ranked {
		fmt.Fprintf(w, "%-4d %-20s %-8g %-14s %-10s %-14s\n",
			c.Rank,
			c.Name,
			c.Result.PanelsNeeded,
			c.Result.Status,
			c.Result.PaybackLabel(),
			estimate.FormatMoney(c.Result.CostSavingsPerYear),
		)
	}
}

func printSweep(w io.Writer, points []analysis.SweepPoint) {
	fmt.Fprintf(w, "%-8s %-16s %-16s %-14s\n", "panels", "production/day", "surplus/day", "status")
	for _, p := range points {
		fmt.Fprintf(w, "%-8d %-16.2f %-16.2f %-14s\n", p.Panels, p.ActualProductionPerDayKWh, p.SurplusPerDayKWh, p.Status)
	}
	if first, ok := analysis.FirstSufficient(points); ok {
		fmt.Fprintf(w, "First sufficient installation: %d panels\n", first.Panels)
	} else {
		fmt.Fprintln(w, "No installation in range covers demand")
	}
}

func printCategories(w io.Writer, c *data.Catalog) {
	fmt.Fprintf(w, "%-12s %-20s %-8s\n", "name", "label", "Wh/kg")
	for _, cat := range c.Categories {
		fmt.Fprintf(w, "%-12s %-20s %-8g\n", cat.Name, cat.Label, cat.WattHoursPerKg)
	}
}
