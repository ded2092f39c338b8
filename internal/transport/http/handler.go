package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError маппит классы доменных ошибок на HTTP статусы
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientPayment):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func callerID(c *gin.Context) string {
	return c.GetString("callerId")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
