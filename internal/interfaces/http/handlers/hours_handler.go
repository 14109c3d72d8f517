package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/interfaces/http/middleware"
	"makershop.backend/internal/interfaces/http/response"
	"makershop.backend/internal/usecases"
)

// HoursHandler handles owner pickup-hours endpoints
type HoursHandler struct {
	contentUsecase *usecases.ContentUsecase
}

// NewHoursHandler creates a new hours handler
func NewHoursHandler(contentUsecase *usecases.ContentUsecase) *HoursHandler {
	return &HoursHandler{contentUsecase: contentUsecase}
}

// ReplaceHours swaps the caller's full weekly hours set
// PUT /api/v1/hours
func (h *HoursHandler) ReplaceHours(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input struct {
		Hours []entities.ShopHoursInput `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	hours, err := h.contentUsecase.ReplaceHours(c.Request.Context(), userID, input.Hours)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Days must be unique and between 0 and 6"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hours": hours})
}

// ListHours lists the caller's weekly hours
// GET /api/v1/hours
func (h *HoursHandler) ListHours(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	hours, err := h.contentUsecase.ListHours(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hours": hours})
}
