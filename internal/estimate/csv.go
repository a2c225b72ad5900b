package estimate

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// ExportFileName is the fixed download name for exported results.
const ExportFileName = "sun_to_sort_analysis.csv"

// ExportRow is one (label, value) metric line.
type ExportRow struct {
	Item  string
	Value string
}

// ExportRows flattens a Result into labelled metrics. The battery row is
// present only when backup sizing ran.
func ExportRows(r Result) []ExportRow {
	rows := []ExportRow{
		{"Energy Used (kWh/Day)", fmtFloat(r.EnergyUsedPerDayKWh)},
		{"Energy Used (kWh/Month)", fmtFloat(r.EnergyUsedPerMonthKWh)},
		{"Actual Production (kWh/Day)", fmtFloat(r.ActualProductionPerDayKWh)},
		{"Actual Production (kWh/Month)", fmtFloat(r.ActualProductionPerMonthKWh)},
		{"Panels Needed (Minimum)", fmtFloat(r.PanelsNeeded)},
		{"Surplus/Deficit (kWh/Day)", fmtFloat(r.SurplusPerDayKWh)},
		{"Surplus/Deficit (kWh/Month)", fmtFloat(r.SurplusPerMonthKWh)},
		{"System Status", string(r.Status)},
		{"Cost Savings (per Month)", FormatMoney(r.CostSavingsPerMonth)},
		{"Cost Savings (per Year)", FormatMoney(r.CostSavingsPerYear)},
		{"Payback Period (Years)", r.PaybackLabel()},
		{"CO2 Saved (kg/Month)", fmtFloat(r.CO2SavedPerMonthKg)},
	}
	if r.Battery != nil {
		rows = append(rows, ExportRow{"Battery Capacity (Ah)", fmtFloat(r.Battery.CapacityAh)})
	}
	return rows
}

// WriteCSV writes the header row and one row per metric.
func WriteCSV(out io.Writer, r Result) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"Item", "Value"}); err != nil {
		return err
	}
	for _, row := range ExportRows(r) {
		if err := w.Write([]string{row.Item, row.Value}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCSVFile is WriteCSV to a newly created file at path.
func WriteCSVFile(path string, r Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatMoney rounds half away from zero to two places. Non-finite amounts
// render as "N/A".
func FormatMoney(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "N/A"
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
