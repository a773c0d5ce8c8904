package routes

import (
	"github.com/awash-lottery/backend/internal/config"
	"github.com/awash-lottery/backend/internal/handlers"
	"github.com/awash-lottery/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	WinnerHandler *handlers.WinnerHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Admin routes: authenticated and admin-role only
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	admin.Use(middleware.AdminOnlyMiddleware())
	{
		winners := admin.Group("/winners")
		{
			winners.GET("", deps.WinnerHandler.GetWinners)
			winners.POST("/announce", deps.WinnerHandler.AnnounceWinner)
		}

		tickets := admin.Group("/tickets")
		{
			tickets.GET("/:number", deps.WinnerHandler.GetTicketByNumber)
		}
	}

	return router
}
