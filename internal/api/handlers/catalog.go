package handlers

import (
	"net/http"

	"sun-to-sort/internal/api/models"
	"sun-to-sort/internal/data"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the waste category catalog
type CatalogHandler struct {
	catalog *data.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *data.Catalog) *CatalogHandler {
	if catalog == nil {
		catalog = data.DefaultCatalog()
	}
	return &CatalogHandler{catalog: catalog}
}

// ListCategories handles GET /api/v1/waste-categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoriesResponse{Categories: h.catalog.Categories})
}
