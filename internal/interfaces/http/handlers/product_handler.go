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

// ProductHandler handles owner product management endpoints
type ProductHandler struct {
	contentUsecase *usecases.ContentUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(contentUsecase *usecases.ContentUsecase) *ProductHandler {
	return &ProductHandler{contentUsecase: contentUsecase}
}

// CreateProduct adds a product to the caller's shop
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.contentUsecase.CreateProduct(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// ListProducts lists the caller's products
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	products, err := h.contentUsecase.ListProducts(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No shop yet, save the builder first"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// UpdateProduct overwrites one of the caller's products
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	var input entities.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.contentUsecase.UpdateProduct(c.Request.Context(), userID, productID, &input)
	if err != nil {
		respondContentError(c, err, "Product not found")
		return
	}

	response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes one of the caller's products
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	if err := h.contentUsecase.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		respondContentError(c, err, "Product not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

// respondContentError maps the shared ownership and lookup errors for
// content endpoints
func respondContentError(c *gin.Context, err error, notFoundMsg string) {
	switch err {
	case domainerrors.ErrNotFound:
		response.Error(c, domainerrors.NotFound(notFoundMsg))
	case domainerrors.ErrForbidden:
		response.Error(c, domainerrors.Forbidden("Not your resource"))
	default:
		response.Error(c, err)
	}
}
