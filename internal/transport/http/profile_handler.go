package handlers

import (
	"net/http"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles *usecase.ProfileUseCase
}

func NewProfileHandler(profiles *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GET /api/v1/profiles?user=
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c, c.Query("user"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GET /api/v1/profile/purchases
func (h *ProfileHandler) Purchases(c *gin.Context) {
	purchases, err := h.profiles.Purchases(c, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchased_courses": purchases})
}

// GET /api/v1/profile/courses — купленные курсы целиком
func (h *ProfileHandler) Courses(c *gin.Context) {
	courses, err := h.profiles.PurchasedCourses(c, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GET /api/v1/profile/courses/:id — полный курс, только владельцу покупки
func (h *ProfileHandler) CourseDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := h.profiles.PurchasedCourseDetail(c, callerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// GET /api/v1/profile/certification/:id
func (h *ProfileHandler) Certification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	purchase, err := h.profiles.CertificationStatus(c, callerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}
