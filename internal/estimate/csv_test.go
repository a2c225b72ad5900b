package estimate

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRows(t *testing.T) {
	res := New().Compute(baseParams())
	rows := ExportRows(res)

	byItem := map[string]string{}
	for _, r := range rows {
		byItem[r.Item] = r.Value
	}

	assert.Len(t, rows, 12)
	assert.Equal(t, "600.000000", byItem["Energy Used (kWh/Month)"])
	assert.Equal(t, "18.000000", byItem["Panels Needed (Minimum)"])
	assert.Equal(t, "2700.00", byItem["Cost Savings (per Month)"])
	assert.Equal(t, "32400.00", byItem["Cost Savings (per Year)"])
	assert.Equal(t, "4.63", byItem["Payback Period (Years)"])
	assert.Equal(t, "SUFFICIENT", byItem["System Status"])
	assert.NotContains(t, byItem, "Battery Capacity (Ah)")
}

func TestExportRows_BatteryAndUndefinedPayback(t *testing.T) {
	p := baseParams()
	p.MachineCount = 0
	p.BackupHours = 2
	p.SystemVoltage = 48
	p.DepthOfDischarge = 0.8
	p.InverterEfficiency = 0.9
	rows := ExportRows(New().Compute(p))

	require.Len(t, rows, 13)
	last := rows[len(rows)-1]
	assert.Equal(t, "Battery Capacity (Ah)", last.Item)
	assert.Equal(t, "0.000000", last.Value)

	for _, r := range rows {
		if r.Item == "Payback Period (Years)" {
			assert.Equal(t, "N/A", r.Value)
		}
	}
}

func TestExportRows_OverflowingSavings(t *testing.T) {
	p := baseParams()
	p.ElectricityPricePerKWh = 1e307

	var rows []ExportRow
	require.NotPanics(t, func() { rows = ExportRows(New().Compute(p)) })

	byItem := map[string]string{}
	for _, r := range rows {
		byItem[r.Item] = r.Value
	}
	assert.Equal(t, "N/A", byItem["Cost Savings (per Month)"])
	assert.Equal(t, "N/A", byItem["Cost Savings (per Year)"])
}

func TestWriteCSV(t *testing.T) {
	res := New().Compute(baseParams())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(ExportRows(res))+1)
	assert.Equal(t, []string{"Item", "Value"}, records[0])
	assert.Equal(t, []string{"Energy Used (kWh/Day)", "20.000000"}, records[1])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExportFileName)
	require.NoError(t, WriteCSVFile(path, New().Compute(baseParams())))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Item,Value\n")
	assert.Contains(t, string(raw), "Payback Period (Years),4.63\n")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2700, "2700.00"},
		{0.005, "0.01"},
		{1234.567, "1234.57"},
		{-12.345, "-12.35"},
		{0, "0.00"},
		{math.Inf(1), "N/A"},
		{math.Inf(-1), "N/A"},
		{math.NaN(), "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.in))
		})
	}
}
