package routes

import (
	"pettime_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every HTTP route. The API lives at the root, the
// paths the mobile client has always called.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.PetHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.ProductHandler.RegisterRoutes(api)
		appHandlers.AppointmentHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	// Uploaded pet photos and product images.
	ginRouter.Static("/uploads", uploadsDir)

	ginRouter.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
