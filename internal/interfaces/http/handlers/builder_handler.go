package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/interfaces/http/middleware"
	"makershop.backend/internal/interfaces/http/response"
	"makershop.backend/internal/usecases"
)

// BuilderHandler handles storefront builder endpoints
type BuilderHandler struct {
	builderUsecase    *usecases.BuilderUsecase
	storefrontUsecase *usecases.StorefrontUsecase
}

// NewBuilderHandler creates a new builder handler
func NewBuilderHandler(builderUsecase *usecases.BuilderUsecase, storefrontUsecase *usecases.StorefrontUsecase) *BuilderHandler {
	return &BuilderHandler{
		builderUsecase:    builderUsecase,
		storefrontUsecase: storefrontUsecase,
	}
}

// Save persists the full builder document
// POST /api/v1/builder/save
func (h *BuilderHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var payload entities.BuilderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.builderUsecase.Save(c.Request.Context(), userID, &payload)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Shop name is required"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetState returns the builder document for the caller's shop
// GET /api/v1/builder
func (h *BuilderHandler) GetState(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	state, err := h.builderUsecase.GetBuilderState(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, state)
}

// ApplyTemplate overwrites the caller's design with a template preset
// POST /api/v1/builder/templates/:id/apply
func (h *BuilderHandler) ApplyTemplate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	result, err := h.builderUsecase.ApplyTemplate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch err {
		case domainerrors.ErrUnknownTemplate:
			response.Error(c, domainerrors.NotFound("Unknown template"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Preview composes the caller's page regardless of visibility
// GET /api/v1/builder/preview/:shopId
func (h *BuilderHandler) Preview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid shop ID"))
		return
	}

	page, err := h.storefrontUsecase.GetPreviewPage(c.Request.Context(), userID, shopID)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Shop not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Not your shop"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, page)
}
