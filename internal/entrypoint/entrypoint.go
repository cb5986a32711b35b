package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tilawahub/tilawa/internal/config"
	"github.com/tilawahub/tilawa/internal/database"
	"github.com/tilawahub/tilawa/internal/database/juzs"
	"github.com/tilawahub/tilawa/internal/database/recitations"
	"github.com/tilawahub/tilawa/internal/database/surahs"
	http_controllers "github.com/tilawahub/tilawa/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Tilawa v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.Static.FrontendDir != "" {
		if _, err := os.Stat(cfg.Static.FrontendDir); os.IsNotExist(err) {
			log.Printf("WARNING: frontend directory %s does not exist, static serving disabled", cfg.Static.FrontendDir)
			cfg.Static.FrontendDir = ""
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		SurahStore:      surahs.NewRepository(db.DB),
		JuzStore:        juzs.NewRepository(db.DB),
		RecitationStore: recitations.NewRepository(db.DB),
		Database:        db,
		MostLikedLimit:  cfg.Query.MostLikedLimit,
		FrontendDir:     cfg.Static.FrontendDir,
		Version:         version,
	})

	Serve(router, cfg, nil)
}
