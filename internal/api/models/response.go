package models

import (
	"sun-to-sort/internal/data"
	"sun-to-sort/internal/estimate"
)

// EstimateResponse represents the response from an estimate run
type EstimateResponse struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Name      string           `json:"name,omitempty"`
	Result    estimate.Result  `json:"result"`
	Breakdown []CategoryDemand `json:"breakdown,omitempty"` // waste mode only
}

// CategoryDemand is the daily energy attributed to one waste stream.
type CategoryDemand struct {
	Category string  `json:"category"`
	KgPerDay float64 `json:"kg_per_day"`
	KWhDay   float64 `json:"kwh_per_day"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Rank         int             `json:"rank"`
	Name         string          `json:"name"`
	PaybackLabel string          `json:"payback_label"`
	Result       estimate.Result `json:"result"`
}

// CategoriesResponse lists the waste catalog.
type CategoriesResponse struct {
	Categories []data.Category `json:"categories"`
}

// PresetsResponse lists preset scenarios.
type PresetsResponse struct {
	Presets []data.Preset `json:"presets"`
}

// DemandModeInfo represents information about a demand model
type DemandModeInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a demand model parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "list"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned by the API.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidParameters = "INVALID_PARAMETERS"
	CodeInvalidPreset     = "INVALID_PRESET"
	CodeInternal          = "INTERNAL_ERROR"
)
