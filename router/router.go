// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/923325596/albedo-boot/controller"
	"github.com/923325596/albedo-boot/middleware"
)

type Options struct {
	AuthSecret        string
	RateLimitClient   redis.Cmdable
	RateLimitRequests int
	RateLimitDuration time.Duration
}

// SetupRouter mounts the API under /api/v1 behind rate limiting and bearer
// auth. /health stays open.
func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(opts.RateLimitClient, opts.RateLimitRequests, opts.RateLimitDuration))
	api.Use(middleware.Auth(opts.AuthSecret))
	controllers.RegisterRoutes(api)

	return router
}
