package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.signUp)
		authGroup.POST("/signin", h.signIn)
	}
	api.GET("/system/health", h.healthCheck)

	// Маршруты, требующие токен
	protected := api.Group("")
	protected.Use(AuthMiddleware(h.identityService, h.logger))
	{
		protected.GET("/me", h.me)

		bottles := protected.Group("/bottles")
		{
			bottles.POST("", h.submitBottle)
			bottles.GET("", h.listBottles)
			bottles.POST("/:id/responses", h.respondToBottle)
		}

		shelters := protected.Group("/shelters")
		{
			shelters.POST("", h.registerShelter)
			shelters.GET("", h.listShelters)
			shelters.GET("/nearby", h.nearbyShelters)
		}
	}
}
