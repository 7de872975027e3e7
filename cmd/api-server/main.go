package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"slugwatch/internal/delivery"
	"slugwatch/internal/progress"
	"slugwatch/internal/slugcheck"
	"slugwatch/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	dcfg := utils.LoadDeliveryConfig()
	if dcfg.ProjectID == "" {
		log.Fatal("SLUGWATCH_PROJECT_ID is required")
	}
	scanCfg := utils.LoadScanConfig()
	cfg := slugcheck.Config{
		ContentType: scanCfg.ContentType,
		SlugFields:  scanCfg.SlugFields,
		Languages:   scanCfg.Languages,
	}

	client := delivery.NewClient(dcfg.BaseURL, dcfg.ProjectID, dcfg.APIKey)

	hub := progress.NewHub()
	detector := slugcheck.NewDetector(client)
	detector.Hub = hub

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/ws", progress.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "project": dcfg.ProjectID})
	})

	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ready",
			"ws_clients":   hub.Count(),
			"content_type": cfg.ContentType,
			"languages":    cfg.Languages,
		})
	})

	handler := slugcheck.NewHandler(detector, cfg)
	handler.RegisterRoutes(router.Group("/api"))

	addr := os.Getenv("SLUGWATCH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
