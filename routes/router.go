package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/auth"
	"github.com/rossim-dev/scoutbase/internal/player"
	"github.com/rossim-dev/scoutbase/internal/video"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.MaxMultipartMemory = appConfig.Upload.MaxSizeBytes

	// Landing page; also the redirect target after logout.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ScoutBase API"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth.RegisterAuthRoutes(r, db, appConfig)

	api := r.Group("/api")
	player.RegisterPlayerRoutes(api, db, appConfig)
	video.RegisterVideoRoutes(api, db, appConfig)

	return r
}
