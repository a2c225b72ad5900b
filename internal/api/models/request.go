package models

import "sun-to-sort/internal/config"

// EstimateRequest represents the request body for running an estimate.
// When Preset is set, the preset file is loaded first and Config is merged
// on top of it.
type EstimateRequest struct {
	Preset string        `json:"preset,omitempty"` // preset ID from GET /api/v1/presets
	Config config.Config `json:"config"`
}

// CompareRequest represents a request to compare several scenarios against
// a shared base.
type CompareRequest struct {
	Preset     string              `json:"preset,omitempty"`
	BaseConfig config.Config       `json:"base_config"`
	Variations []ScenarioVariation `json:"variations" binding:"required,min=1,dive"`
}

// ScenarioVariation defines a variation to evaluate
type ScenarioVariation struct {
	Name   string        `json:"name" binding:"required"`
	Config config.Config `json:"config"`
}
