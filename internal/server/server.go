// Package server exposes the search engine over a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hanzikit/hanzikit/internal/detail"
	"github.com/hanzikit/hanzikit/internal/search"
)

// Handler serves the search, detail and random-view endpoints.
type Handler struct {
	engine   *search.Engine
	resolver *detail.Resolver
}

// NewHandler creates a Handler over the engine and resolver.
func NewHandler(engine *search.Engine, resolver *detail.Resolver) *Handler {
	return &Handler{
		engine:   engine,
		resolver: resolver,
	}
}

// Router builds the gin router. Degraded data sources never surface as 5xx:
// the worst case response is an empty result list.
func (h *Handler) Router(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}))

	v1 := router.Group("/api/v1")
	v1.GET("/search", h.search)
	v1.GET("/characters/:character", h.character)
	v1.GET("/random", h.random)
	return router
}

type searchResponse struct {
	Results []search.Result `json:"results"`
}

func (h *Handler) search(c *gin.Context) {
	results := h.engine.Search(c.Request.Context(), c.Query("q"))
	if results == nil {
		results = []search.Result{}
	}
	c.JSON(http.StatusOK, searchResponse{Results: results})
}

func (h *Handler) character(c *gin.Context) {
	resolved := h.resolver.Resolve(c.Request.Context(), c.Param("character"))
	if resolved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected exactly one Chinese character"})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

func (h *Handler) random(c *gin.Context) {
	results := h.engine.RandomResults(c.Request.Context())
	if results == nil {
		results = []search.Result{}
	}
	c.JSON(http.StatusOK, searchResponse{Results: results})
}
