package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"sun-to-sort/internal/api/models"
	"sun-to-sort/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PresetHandler lists preset scenario files
type PresetHandler struct {
	presetDir string
	logger    zerolog.Logger
}

// NewPresetHandler creates a new preset handler. The directory is made
// absolute so listings do not depend on later working directory changes.
func NewPresetHandler(dir string, logger zerolog.Logger) *PresetHandler {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger = logger.With().Str("handler", "presets").Logger()
	logger.Info().Str("dir", dir).Msg("using preset directory")
	return &PresetHandler{presetDir: dir, logger: logger}
}

// ListPresets handles GET /api/v1/presets. A missing directory yields an
// empty list rather than an error.
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets, skipped, err := data.ListPresets(h.presetDir)
	if err != nil {
		if os.IsNotExist(err) {
			h.logger.Warn().Str("dir", h.presetDir).Msg("preset directory does not exist")
		} else {
			h.logger.Error().Err(err).Str("dir", h.presetDir).Msg("failed to read preset directory")
		}
		c.JSON(http.StatusOK, models.PresetsResponse{Presets: []data.Preset{}})
		return
	}

	for name, err := range skipped {
		h.logger.Warn().Err(err).Str("file", name).Msg("skipping invalid preset")
	}
	h.logger.Debug().Int("count", len(presets)).Msg("listed presets")

	c.JSON(http.StatusOK, models.PresetsResponse{Presets: presets})
}
