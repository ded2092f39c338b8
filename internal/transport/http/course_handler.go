package handlers

import (
	"net/http"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

// CourseHandler — операции автора над своими курсами
type CourseHandler struct {
	catalog *usecase.CatalogUseCase
	reviews *usecase.ReviewUseCase
}

func NewCourseHandler(catalog *usecase.CatalogUseCase, reviews *usecase.ReviewUseCase) *CourseHandler {
	return &CourseHandler{catalog: catalog, reviews: reviews}
}

// POST /api/v1/courses
func (h *CourseHandler) Publish(c *gin.Context) {
	var req usecase.PublishCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.catalog.PublishCourse(c, callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// PUT /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req usecase.UpdateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.catalog.UpdateCourse(c, callerID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteCourse(c, callerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/courses/mine
func (h *CourseHandler) Mine(c *gin.Context) {
	courses, err := h.catalog.InstructorCourses(c, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// POST /api/v1/courses/:id/reviews
func (h *CourseHandler) UpsertReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Review  string `json:"review"`
		Critics int    `json:"critics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.UpsertReview(c, id, callerID(c), req.Review, req.Critics)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
