// SPDX-License-Identifier: MIT
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the sky API under rg (normally /v1).
//
//	POST /skies                        create a sky
//	GET  /skies/:slug                  sky metadata
//	POST /skies/:slug/stars            add a star
//	GET  /skies/:slug/constellation    one page with its lines (?page=N)
//	GET  /skies/:slug/events           server-sent star_added events
//	GET  /universe                     total stars across skies
//	POST /constellation                build lines for raw points
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	skies := rg.Group("/skies")
	{
		skies.POST("", h.HandleCreateSky)
		skies.GET("/:slug", h.HandleGetSky)
		skies.POST("/:slug/stars", h.HandleAddStar)
		skies.GET("/:slug/constellation", h.HandleConstellation)
		skies.GET("/:slug/events", h.HandleEvents)
	}
	rg.GET("/universe", h.HandleUniverse)
	rg.POST("/constellation", h.HandleBuild)
}

// NewRouter returns an engine with recovery, /health, /metrics and /v1.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterRoutes(router.Group("/v1"), h)

	return router
}

// MetricsHandler serves only /metrics, for a separate listener.
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
