package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"makershop.backend/internal/interfaces/http/response"
	"makershop.backend/internal/usecases"
)

// CatalogHandler serves the static section catalog and template presets
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListSections returns every available section definition
// GET /api/v1/sections/catalog
func (h *CatalogHandler) ListSections(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"sections": usecases.ListSectionDefinitions(),
	})
}

// ListTemplates returns every built-in template preset
// GET /api/v1/templates
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"templates": usecases.ListTemplates(),
	})
}

// GetTemplate returns a single template preset
// GET /api/v1/templates/:id
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	tpl, ok := usecases.GetTemplate(c.Param("id"))
	if !ok {
		response.ErrorWithError(c, http.StatusNotFound, "ERR_NOT_FOUND", "Unknown template")
		return
	}
	response.Success(c, http.StatusOK, tpl)
}
