package handlers

import (
	"net/http"

	"sun-to-sort/internal/api/models"
	"sun-to-sort/internal/model"

	"github.com/gin-gonic/gin"
)

// ListDemandModes handles GET /api/v1/demand-modes
func ListDemandModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"demand_modes": demandModes})
}

var demandModes = []models.DemandModeInfo{
	{
		Name:        string(model.DemandMachine),
		Description: "Machine-based demand. Daily energy is machine count times average power times working hours.",
		Parameters: []models.ParameterInfo{
			{
				Name:        "machine_count",
				Type:        "int",
				Description: "Number of sorting machines (>= 1)",
			},
			{
				Name:        "power_per_machine_watts",
				Type:        "float",
				Description: "Average power draw per machine in watts",
			},
			{
				Name:        "work_hours_per_day",
				Type:        "float",
				Description: "Operating hours per day, 1 to 24",
			},
		},
	},
	{
		Name:        string(model.DemandWaste),
		Description: "Waste-throughput demand. Daily energy is the sum over streams of kg/day times the category's Wh/kg intensity.",
		Parameters: []models.ParameterInfo{
			{
				Name:        "waste_streams",
				Type:        "list",
				Description: "Entries of {category, kg_per_day, watt_hours_per_kg}; a zero intensity takes the catalog value",
			},
			{
				Name:        "work_hours_per_day",
				Type:        "float",
				Description: "Operating hours per day, used for battery sizing",
			},
		},
	},
}
