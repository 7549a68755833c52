package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marketplace-api/internal/config"
	dbpkg "github.com/BruksfildServices01/marketplace-api/internal/db"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
	"github.com/BruksfildServices01/marketplace-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hub := realtime.NewHub(cfg)
	defer hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := hub.Ping(ctx); err != nil {
		log.Fatalf("redis unreachable: %v", err)
	}
	cancel()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, hub)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
