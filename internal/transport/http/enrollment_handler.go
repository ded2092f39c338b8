package handlers

import (
	"net/http"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler — платные операции: покупка курса и сертификации
type EnrollmentHandler struct {
	enrollment *usecase.EnrollmentUseCase
}

func NewEnrollmentHandler(enrollment *usecase.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollment: enrollment}
}

type attachRequest struct {
	// Сумма, прикладываемая к вызову: цена + оплата стораджа
	AttachedValue int64 `json:"attached_value" binding:"required"`
}

// POST /api/v1/courses/:id/buy
func (h *EnrollmentHandler) BuyCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req attachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.enrollment.BuyCourse(c, callerID(c), id, req.AttachedValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// POST /api/v1/courses/:id/certification
func (h *EnrollmentHandler) BuyCertification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req attachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.enrollment.BuyCertification(c, callerID(c), id, req.AttachedValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}
