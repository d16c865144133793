package routes

import (
	"github.com/P3RALT/SysEstoque/internal/container"
	"github.com/P3RALT/SysEstoque/internal/middleware"
	"github.com/P3RALT/SysEstoque/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.LoginHandler.RegisterRoutes(router)
	container.InventoryHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())

	container.LoginHandler.RegisterProtectedRoutes(protectedRoutes)
	container.CartHandler.RegisterRoutes(protectedRoutes)
	container.ReqLogHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
