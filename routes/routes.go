package routes

import (
	"net/http"
	"time"

	"synkt/handlers"
	"synkt/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.CreateUserHandler)
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
		api.PUT("/update/:id", hb.UpdateUserHandler)
	}
}

// RegisterCalendarRoutes registers availability and best-times endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/availability/:userId", hb.GetAvailabilityHandler)
		api.PUT("/availability/:userId", hb.SaveAvailabilityHandler)
		api.POST("/mock/:userId", hb.GenerateMockHandler)
		api.POST("/sync/:userId", hb.SyncCalendarHandler)
		api.GET("/best-times", hb.FindBestTimesHandler)
	}
}

// RegisterGroupRoutes registers group and voting endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.POST("", hb.CreateGroupHandler)
		api.GET("/:id", hb.GetGroupHandler)
		api.GET("/user/:userId", hb.GetGroupsByUserHandler)
		api.POST("/:id/members", hb.AddGroupMemberHandler)
		api.POST("/:id/calculate-times", hb.CalculateBestTimesHandler)
		api.POST("/:id/vote", hb.VoteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterHealthRoute(r)
}
