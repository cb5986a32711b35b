package http

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tilawahub/tilawa/internal/database"
)

// RouterConfig carries every dependency the router needs, improving
// testability and reducing parameter count.
type RouterConfig struct {
	SurahStore      SurahStore
	JuzStore        JuzStore
	RecitationStore RecitationStore
	Database        *database.Database
	MostLikedLimit  int
	FrontendDir     string
	Version         string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	// Frontend clients are served from arbitrary origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	health := NewHealthController(cfg.Database, cfg.Version)
	surahsController := NewSurahsController(cfg.SurahStore)
	juzsController := NewJuzsController(cfg.JuzStore)
	recitationsController := NewRecitationsController(cfg.RecitationStore, cfg.MostLikedLimit)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	router.GET("/surahs", surahsController.List)
	router.GET("/surah/:id", surahsController.Detail)
	router.GET("/juz/:number", juzsController.Detail)

	// Recitation endpoints
	router.POST("/recitations", recitationsController.Create)
	router.GET("/recitations/most-liked", recitationsController.MostLiked)
	router.GET("/recitations/search", recitationsController.Search)
	router.POST("/recitations/:id/like", recitationsController.Like)
	router.GET("/random", recitationsController.Random)

	// Serve the SPA when a frontend directory is configured. Unknown paths
	// fall back to index.html for client-side routing.
	if cfg.FrontendDir != "" {
		indexPath := filepath.Join(cfg.FrontendDir, "index.html")
		router.Static("/static", cfg.FrontendDir)
		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
		router.NoRoute(func(c *gin.Context) {
			c.File(indexPath)
		})
	}

	return router
}
