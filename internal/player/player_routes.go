package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/middleware"
	"github.com/rossim-dev/scoutbase/pkg/rmiddleware"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	// Search is reachable without a session.
	router.GET("/players/search", playerController.SearchPlayers)

	authenticated := router.Group("/")
	authenticated.Use(middleware.AuthMiddleware(appConfig.Session.Secret, appConfig.Session.CookieName, db))
	{
		authenticated.POST("/players", playerController.CreatePlayer)
		authenticated.GET("/players", playerController.GetMyPlayers)
		authenticated.GET("/players/all", playerController.GetAllPlayers)
		authenticated.GET("/players/:player_id", playerController.GetPlayer)
		authenticated.POST("/players/:player_id/parents", playerController.AddParent)

		authenticated.GET("/access-requests", playerController.ListAccessRequests)
		authenticated.PUT("/access-requests/:request_id", playerController.UpdateAccessRequest)

		coachOnly := authenticated.Group("/")
		coachOnly.Use(rmiddleware.CoachOrScoutMiddleware(db))
		{
			coachOnly.POST("/players/:player_id/access-requests", playerController.CreateAccessRequest)
		}
	}
}
