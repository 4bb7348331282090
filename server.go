package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server exposes the dashboard read surface over HTTP.
type Server struct {
	engine *gin.Engine
	cache  *DashboardCache
}

func NewServer(cache *DashboardCache) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{engine: router, cache: cache}
	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/dashboard-data", s.handleDashboardData)
		api.POST("/revalidate", s.handleRevalidate)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDashboardData serves the cached payload. Optional search/member/
// bucket query parameters narrow the response per request without touching
// the cached object.
func (s *Server) handleDashboardData(c *gin.Context) {
	data, err := s.cache.Get(c.Request.Context())
	if err != nil {
		log.Printf("dashboard-data request failed: %v", err)
		if errors.Is(err, errTrelloAuth) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Trello authentication failed. Check trello_api_key and trello_token.",
				"code":  "auth_error",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  "internal_error",
		})
		return
	}

	filter := FilterState{
		Search: c.Query("search"),
		Member: c.Query("member"),
		Bucket: c.Query("bucket"),
	}
	if filter.IsZero() {
		c.JSON(http.StatusOK, data)
		return
	}
	c.JSON(http.StatusOK, applyFilters(data, filter))
}

// handleRevalidate invalidates the cache tag. The next read re-runs the full
// fetch/transform/aggregate cycle; this handler does not re-fetch itself.
func (s *Server) handleRevalidate(c *gin.Context) {
	generation := s.cache.Invalidate()
	log.Printf("cache invalidated generation=%d", generation)
	c.JSON(http.StatusOK, gin.H{"revalidated": true})
}
