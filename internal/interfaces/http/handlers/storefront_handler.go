package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/interfaces/http/response"
	"makershop.backend/internal/usecases"
)

// StorefrontHandler serves composed public storefront pages
type StorefrontHandler struct {
	storefrontUsecase *usecases.StorefrontUsecase
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(storefrontUsecase *usecases.StorefrontUsecase) *StorefrontHandler {
	return &StorefrontHandler{storefrontUsecase: storefrontUsecase}
}

// GetPage returns the rendered page for a public shop
// GET /api/v1/storefronts/:slug
func (h *StorefrontHandler) GetPage(c *gin.Context) {
	page, err := h.storefrontUsecase.GetPublicPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		// Hidden shops are indistinguishable from missing ones
		if err == domainerrors.ErrNotFound || err == domainerrors.ErrShopNotPublic {
			response.Error(c, domainerrors.NotFound("Shop not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}
