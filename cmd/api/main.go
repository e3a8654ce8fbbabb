package main

import (
	"log"
	"net/http"

	"github.com/andreamorim18/helpdesk/internal/config"
	dbpkg "github.com/andreamorim18/helpdesk/internal/db"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	"github.com/andreamorim18/helpdesk/internal/routes"
	"github.com/andreamorim18/helpdesk/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	storageDriver, err := storage.NewDriver(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Locally stored avatars are served straight from disk.
	if cfg.StorageDriver == "local" || cfg.StorageDriver == "" {
		r.Static("/uploads", cfg.UploadsPath)
	}

	routes.RegisterRoutes(r, db, cfg, storageDriver)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
