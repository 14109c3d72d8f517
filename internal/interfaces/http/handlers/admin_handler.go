package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "makershop.backend/internal/domain/errors"
	"makershop.backend/internal/interfaces/http/response"
	"makershop.backend/internal/usecases"
	"makershop.backend/pkg/utils"
)

// AdminHandler handles admin-only marketplace endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListUsers lists registered users
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	users, meta, err := h.adminUsecase.ListUsers(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.Name,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"users": out, "meta": meta})
}

// ListShops lists shops in the marketplace
// GET /api/v1/admin/shops
func (h *AdminHandler) ListShops(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	shops, meta, err := h.adminUsecase.ListShops(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shops": shops, "meta": meta})
}

// GetStats returns marketplace totals
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// SetShopVisibility force-toggles a shop's public flag
// PUT /api/v1/admin/shops/:id/visibility
func (h *AdminHandler) SetShopVisibility(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid shop ID"))
		return
	}

	var input struct {
		IsPublic *bool `json:"isPublic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("isPublic is required"))
		return
	}

	if err := h.adminUsecase.SetShopVisibility(c.Request.Context(), shopID, *input.IsPublic); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Shop not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Visibility updated"})
}
