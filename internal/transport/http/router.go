package handlers

import (
	"time"

	"github.com/waste3d/artemis-marketplace/internal/infrastructure/security"
	"github.com/waste3d/artemis-marketplace/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	allowedOrigins []string,
	tokenManager *security.TokenManager,
	limiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	marketHandler *MarketHandler,
	courseHandler *CourseHandler,
	enrollmentHandler *EnrollmentHandler,
	profileHandler *ProfileHandler,
	walletHandler *WalletHandler,
	adminHandler *AdminHandler,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
		}

		market := api.Group("/market")
		{
			market.GET("/courses", marketHandler.List)
			market.GET("/courses/recent", marketHandler.Recent)
			market.GET("/courses/top", marketHandler.TopRated)
			market.GET("/courses/count", marketHandler.Count)
			market.GET("/courses/:id/reviews/:user", marketHandler.GetReview)
		}
		api.GET("/categories", adminHandler.Categories)
		api.GET("/profiles", profileHandler.List)

		course := api.Group("/courses")
		course.Use(middleware.AuthMiddleware(tokenManager))
		{
			course.POST("", courseHandler.Publish)
			course.PUT("/:id", courseHandler.Update)
			course.DELETE("/:id", courseHandler.Delete)
			course.GET("/mine", courseHandler.Mine)
			course.POST("/:id/buy", enrollmentHandler.BuyCourse)
			course.POST("/:id/certification", enrollmentHandler.BuyCertification)
			course.POST("/:id/reviews", courseHandler.UpsertReview)
		}

		profile := api.Group("/profile")
		profile.Use(middleware.AuthMiddleware(tokenManager))
		{
			profile.GET("/purchases", profileHandler.Purchases)
			profile.GET("/courses", profileHandler.Courses)
			profile.GET("/courses/:id", profileHandler.CourseDetail)
			profile.GET("/certification/:id", profileHandler.Certification)
		}

		wallet := api.Group("/wallet")
		wallet.Use(middleware.AuthMiddleware(tokenManager))
		{
			wallet.GET("", walletHandler.Balance)
			wallet.GET("/history", walletHandler.History)
			wallet.POST("/deposit", walletHandler.Deposit)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(tokenManager))
		{
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
			admin.GET("/admins", adminHandler.ListAdmins)
			admin.POST("/admins", adminHandler.AddAdmin)
			admin.DELETE("/admins/:id", adminHandler.RemoveAdmin)
			admin.POST("/certification/reset", adminHandler.ResetCertification)
		}
	}

	return r
}
