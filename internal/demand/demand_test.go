package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sun-to-sort/internal/model"
)

func TestFor_SelectsSingleModel(t *testing.T) {
	p := model.FacilityParameters{
		MachineCount:         5,
		PowerPerMachineWatts: 500,
		WorkHoursPerDay:      8,
		WasteStreams: []model.WasteStreamEntry{
			{Category: "plastic", KgPerDay: 1000, WattHoursPerKg: 50},
		},
	}

	t.Run("zero mode is machine", func(t *testing.T) {
		m := For(p)
		assert.Equal(t, model.DemandMachine, m.Mode())
		assert.Equal(t, 20.0, m.DailyKWh())
	})

	t.Run("waste mode ignores machines", func(t *testing.T) {
		p := p
		p.Mode = model.DemandWaste
		m := For(p)
		assert.Equal(t, model.DemandWaste, m.Mode())
		assert.Equal(t, 50.0, m.DailyKWh())
	})
}

func TestMachine_DailyKWh(t *testing.T) {
	tests := []struct {
		name string
		m    Machine
		want float64
	}{
		{"worked example", Machine{Count: 5, PowerWatts: 500, HoursPerDay: 8}, 20},
		{"single machine all day", Machine{Count: 1, PowerWatts: 1000, HoursPerDay: 24}, 24},
		{"no machines", Machine{Count: 0, PowerWatts: 750, HoursPerDay: 10}, 0},
		{"fractional hours", Machine{Count: 3, PowerWatts: 250, HoursPerDay: 7.5}, 5.625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.DailyKWh())
		})
	}
}

func TestWaste_DailyKWh(t *testing.T) {
	w := Waste{Streams: []model.WasteStreamEntry{
		{Category: "plastic", KgPerDay: 500, WattHoursPerKg: 30},
		{Category: "paper", KgPerDay: 200, WattHoursPerKg: 25},
		{Category: "organic", KgPerDay: 0, WattHoursPerKg: 40},
	}}
	assert.InDelta(t, 20.0, w.DailyKWh(), 1e-12)

	assert.Equal(t, 0.0, Waste{}.DailyKWh())
}

func TestWaste_Breakdown(t *testing.T) {
	w := Waste{Streams: []model.WasteStreamEntry{
		{Category: "plastic", KgPerDay: 500, WattHoursPerKg: 30},
		{Category: "plastic", KgPerDay: 100, WattHoursPerKg: 30},
	}}

	got := w.Breakdown()
	assert.Equal(t, []CategoryDemand{
		{Category: "plastic", KgPerDay: 500, KWhDay: 15},
		{Category: "plastic", KgPerDay: 100, KWhDay: 3},
	}, got)
	assert.Empty(t, Waste{}.Breakdown())
}
