package handlers

import (
	"net/http"
	"strconv"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"

	"github.com/gin-gonic/gin"
)

// MarketHandler — публичная витрина каталога
type MarketHandler struct {
	catalog *usecase.CatalogUseCase
	reviews *usecase.ReviewUseCase
}

func NewMarketHandler(catalog *usecase.CatalogUseCase, reviews *usecase.ReviewUseCase) *MarketHandler {
	return &MarketHandler{catalog: catalog, reviews: reviews}
}

func marketFilter(c *gin.Context) repository.CourseFilter {
	var f repository.CourseFilter
	if v := c.Query("creator"); v != "" {
		f.CreatorID = &v
	}
	if v := c.Query("category"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.CategoryID = &id
		}
	}
	if v := c.Query("course"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.CourseID = &id
		}
	}
	return f
}

// GET /api/v1/market/courses
func (h *MarketHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	courses, err := h.catalog.MarketCourses(c, marketFilter(c), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GET /api/v1/market/courses/recent
func (h *MarketHandler) Recent(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("count", "10"))

	courses, err := h.catalog.RecentCourses(c, n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GET /api/v1/market/courses/top
func (h *MarketHandler) TopRated(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	courses, err := h.catalog.TopRatedCourses(c, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GET /api/v1/market/courses/count
func (h *MarketHandler) Count(c *gin.Context) {
	f := marketFilter(c)
	count, err := h.catalog.CourseCount(c, f.CreatorID, f.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /api/v1/market/courses/:id/reviews/:user
func (h *MarketHandler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.GetReview(c, id, c.Param("user"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
