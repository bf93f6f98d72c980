// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router context.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
// This avoids passing many parameters to each module's RegisterRoutes method.
type RouterContext struct {
	// Engine is the root Gin engine. The search endpoints live at the root
	// (/search, /decode) because existing clients depend on those exact paths.
	Engine *gin.Engine
	// API is the /api route group (REST-style endpoints, health).
	API *gin.RouterGroup
	// Config is the HTTP configuration.
	Config config.HTTPConfig
}
