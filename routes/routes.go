package routes

import (
	"net/http"
	"time"

	"medcard/config"
	"medcard/handlers"
	"medcard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterEligibilityRoutes registers application submission endpoints.
func RegisterEligibilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/eligibility")
	{
		api.POST("", hb.SubmitEligibilityHandler)
		api.GET("", hb.ListSubmissionsHandler)
	}
}

// RegisterStateRoutes registers the state catalog endpoints.
func RegisterStateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/states")
	{
		api.GET("", hb.ListStatesHandler)
		api.GET("/:slug", hb.GetStateBySlugHandler)
	}
}

// RegisterAuthRoutes registers the admin login endpoint behind the login
// throttle.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", middleware.LoginRateLimitMiddleware(config.AppConfig.LoginAttemptsPerMin), hb.AdminLoginHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterEligibilityRoutes(r, hb)
	RegisterStateRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
