package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/middleware"
)

// RegisterAuthRoutes wires the authentication endpoints. Page-style routes
// (register/login/logout) live at the root; JSON helpers under /api.
func RegisterAuthRoutes(router *gin.Engine, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	api := router.Group("/api")
	{
		api.POST("/register", authController.RegisterLegacy)
		api.GET("/check-auth", authController.CheckAuth)
	}

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(appConfig.Session.Secret, appConfig.Session.CookieName, db))
	{
		protected.GET("/logout", authController.Logout)
	}
}
