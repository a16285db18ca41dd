package video

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/middleware"
)

func RegisterVideoRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	videoRepo := NewVideoRepository(db)
	videoController := NewVideoController(videoRepo, appConfig)

	authenticated := router.Group("/")
	authenticated.Use(middleware.AuthMiddleware(appConfig.Session.Secret, appConfig.Session.CookieName, db))
	{
		authenticated.POST("/players/:player_id/videos", videoController.UploadVideo)
		authenticated.GET("/players/:player_id/videos", videoController.ListVideos)
		authenticated.GET("/players/:player_id/videos/:video_id", videoController.GetVideo)
	}
}
