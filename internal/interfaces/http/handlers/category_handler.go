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

// CategoryHandler handles owner category management endpoints
type CategoryHandler struct {
	contentUsecase *usecases.ContentUsecase
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(contentUsecase *usecases.ContentUsecase) *CategoryHandler {
	return &CategoryHandler{contentUsecase: contentUsecase}
}

// CreateCategory adds a category to the caller's shop
// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.contentUsecase.CreateCategory(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

// ListCategories lists the caller's categories
// GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	categories, err := h.contentUsecase.ListCategories(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// UpdateCategory overwrites one of the caller's categories
// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category ID"))
		return
	}

	var input entities.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.contentUsecase.UpdateCategory(c.Request.Context(), userID, categoryID, &input)
	if err != nil {
		respondContentError(c, err, "Category not found")
		return
	}

	response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes one of the caller's categories
// DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category ID"))
		return
	}

	if err := h.contentUsecase.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		respondContentError(c, err, "Category not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
