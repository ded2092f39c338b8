package handlers

import (
	"net/http"
	"strconv"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler — привилегированные операции: категории, список
// админов, сброс сертификации
type AdminHandler struct {
	admin      *usecase.AdminUseCase
	enrollment *usecase.EnrollmentUseCase
}

func NewAdminHandler(admin *usecase.AdminUseCase, enrollment *usecase.EnrollmentUseCase) *AdminHandler {
	return &AdminHandler{admin: admin, enrollment: enrollment}
}

type categoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"img"`
}

// GET /api/v1/categories (публичный)
func (h *AdminHandler) Categories(c *gin.Context) {
	var id int64
	if v := c.Query("id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		id = parsed
	}

	categories, err := h.admin.Categories(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// POST /api/v1/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.admin.CreateCategory(c, callerID(c), req.Name, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// PUT /api/v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.admin.UpdateCategory(c, callerID(c), id, req.Name, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/v1/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteCategory(c, callerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/admin/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.admin.ListAdmins(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"administrators": admins})
}

// POST /api/v1/admin/admins
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var req struct {
		AccountID string `json:"account_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.AddAdmin(c, callerID(c), req.AccountID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// DELETE /api/v1/admin/admins/:id
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	if err := h.admin.RemoveAdmin(c, callerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/v1/admin/certification/reset
func (h *AdminHandler) ResetCertification(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id" binding:"required"`
		CourseID int64  `json:"course_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.enrollment.ResetCertification(c, callerID(c), req.UserID, req.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}
