// Package router assembles the Gin engine from the application modules.
package router

import (
	"net/http"

	apphttp "github.com/pistalo01/japanese-car-vin-decoder/internal/http"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// New builds the Gin engine, wires shared middleware, and registers every
// module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitPerSecond()), app.Config.GetRateLimitBurst(), app.Logger)
	engine.Use(limiter.RateLimit())

	api := engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		if app.Health != nil {
			if err := app.Health.Ready(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx := &apphttp.RouterContext{
		Engine: engine,
		API:    api,
		Config: app.Config,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID},
		AllowCredentials: app.Config.GetCORSAllowCreds(),
	}

	if app.Config.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = app.Config.GetCORSOrigins()
	}

	return cors.New(corsCfg)
}
