package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"sun-to-sort/internal/analysis"
	"sun-to-sort/internal/api/models"
	"sun-to-sort/internal/config"
	"sun-to-sort/internal/data"
	"sun-to-sort/internal/demand"
	"sun-to-sort/internal/estimate"
	"sun-to-sort/internal/metrics"
	"sun-to-sort/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EstimateHandler handles estimation requests
type EstimateHandler struct {
	estimator *estimate.Estimator
	catalog   *data.Catalog
	presetDir string
	recorder  *metrics.Recorder
	logger    zerolog.Logger
}

// NewEstimateHandler creates a new estimate handler. A nil catalog means the
// built-in defaults; a nil recorder disables metrics.
func NewEstimateHandler(catalog *data.Catalog, presetDir string, recorder *metrics.Recorder, logger zerolog.Logger) *EstimateHandler {
	if catalog == nil {
		catalog = data.DefaultCatalog()
	}
	return &EstimateHandler{
		estimator: estimate.New(),
		catalog:   catalog,
		presetDir: presetDir,
		recorder:  recorder,
		logger:    logger.With().Str("handler", "estimate").Logger(),
	}
}

// apiError is a failed request mapped to its HTTP status.
type apiError struct {
	status int
	detail models.ErrorDetail
}

func respondError(c *gin.Context, e *apiError) {
	c.JSON(e.status, models.ErrorResponse{Error: e.detail})
}

func invalidRequest(err error) *apiError {
	return &apiError{
		status: http.StatusBadRequest,
		detail: models.ErrorDetail{Code: models.CodeInvalidRequest, Message: err.Error()},
	}
}

// Estimate handles POST /api/v1/estimate
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	cfg, apiErr := h.resolve(req.Preset, req.Config)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}

	params := cfg.ToParams()
	res := h.run(params)
	id := uuid.NewString()

	h.logger.Info().
		Str("id", id).
		Str("mode", string(res.Mode)).
		Str("status", string(res.Status)).
		Float64("demand_kwh_day", res.EnergyUsedPerDayKWh).
		Float64("panels_needed", res.PanelsNeeded).
		Msg("estimate computed")

	c.JSON(http.StatusOK, models.EstimateResponse{
		ID:        id,
		Status:    "completed",
		Name:      cfg.Name,
		Result:    res,
		Breakdown: breakdown(params),
	})
}

// Compare handles POST /api/v1/estimate/compare
func (h *EstimateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	variations := make([]analysis.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		cfg, apiErr := h.resolve(req.Preset, config.MergeScenario(req.BaseConfig, v.Config))
		if apiErr != nil {
			if apiErr.detail.Details == nil {
				apiErr.detail.Details = map[string]interface{}{}
			}
			apiErr.detail.Details["variation"] = v.Name
			respondError(c, apiErr)
			return
		}
		variations = append(variations, analysis.Variation{Name: v.Name, Params: cfg.ToParams()})
	}

	comparisons := analysis.Compare(h.estimator, variations)
	ranked := analysis.RankByPayback(comparisons)

	out := models.CompareResponse{Comparison: make([]models.ComparisonResult, 0, len(ranked))}
	for _, r := range ranked {
		h.recorder.Observe(r.Result)
		out.Comparison = append(out.Comparison, models.ComparisonResult{
			Rank:         r.Rank,
			Name:         r.Name,
			PaybackLabel: r.Result.PaybackLabel(),
			Result:       r.Result,
		})
	}

	h.logger.Info().Int("variations", len(variations)).Msg("comparison computed")
	c.JSON(http.StatusOK, out)
}

// Export handles POST /api/v1/estimate/export and returns the CSV summary
// as an attachment.
func (h *EstimateHandler) Export(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	cfg, apiErr := h.resolve(req.Preset, req.Config)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}

	res := h.run(cfg.ToParams())

	var buf bytes.Buffer
	if err := estimate.WriteCSV(&buf, res); err != nil {
		h.logger.Error().Err(err).Msg("csv export failed")
		respondError(c, &apiError{
			status: http.StatusInternalServerError,
			detail: models.ErrorDetail{Code: models.CodeInternal, Message: "failed to write CSV export"},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", estimate.ExportFileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *EstimateHandler) run(p model.FacilityParameters) estimate.Result {
	res := h.estimator.Compute(p)
	h.recorder.Observe(res)
	return res
}

// resolve merges the request config over an optional preset, fills defaults
// and validates the resulting parameters.
func (h *EstimateHandler) resolve(preset string, override config.Config) (*config.Config, *apiError) {
	cfg := override
	if preset != "" {
		path, err := data.ResolvePreset(h.presetDir, preset)
		if err != nil {
			return nil, &apiError{
				status: http.StatusBadRequest,
				detail: models.ErrorDetail{Code: models.CodeInvalidPreset, Message: err.Error()},
			}
		}
		base, err := config.LoadUnchecked(path)
		if err != nil {
			h.logger.Warn().Err(err).Str("preset", preset).Msg("preset failed to load")
			return nil, &apiError{
				status: http.StatusBadRequest,
				detail: models.ErrorDetail{Code: models.CodeInvalidPreset, Message: err.Error()},
			}
		}
		cfg = config.MergeScenario(*base, override)
	}

	cfg.ApplyDefaults(h.catalog)
	if err := cfg.ToParams().Validate(); err != nil {
		return nil, &apiError{
			status: http.StatusBadRequest,
			detail: models.ErrorDetail{
				Code:    models.CodeInvalidParameters,
				Message: "facility parameters are out of range",
				Details: map[string]interface{}{"violations": violations(err)},
			},
		}
	}
	return &cfg, nil
}

// violations flattens a joined validation error into one message per field.
func violations(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		out := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func breakdown(p model.FacilityParameters) []models.CategoryDemand {
	w, ok := demand.For(p).(demand.Waste)
	if !ok {
		return nil
	}
	rows := w.Breakdown()
	out := make([]models.CategoryDemand, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.CategoryDemand{Category: r.Category, KgPerDay: r.KgPerDay, KWhDay: r.KWhDay})
	}
	return out
}
