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

	"github.com/shubhanshu2113/CricBuzz/internal/cricapi"
	"github.com/shubhanshu2113/CricBuzz/internal/crud"
	"github.com/shubhanshu2113/CricBuzz/internal/live"
	"github.com/shubhanshu2113/CricBuzz/internal/reports"
	"github.com/shubhanshu2113/CricBuzz/internal/stats"
	"github.com/shubhanshu2113/CricBuzz/pkg/database"
	"github.com/shubhanshu2113/CricBuzz/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	apiCfg := utils.LoadAPIConfig()
	api := cricapi.NewClient(cricapi.Config{
		BaseURL:           apiCfg.BaseURL,
		APIKey:            apiCfg.APIKey,
		Host:              apiCfg.Host,
		RequestsPerMinute: apiCfg.RequestsPerMinute,
	})
	dataDir := utils.DataDir()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready", "db": "ok"})
	})

	liveHandler := live.NewHandler(api, db, dataDir)
	liveHandler.RegisterRoutes(router.Group("/live"))

	statsHandler := stats.NewHandler(api, db)
	statsHandler.RegisterRoutes(router.Group("/stats"))

	reportsHandler := reports.NewHandler(db, dataDir)
	reportsHandler.RegisterRoutes(router.Group("/sql"))

	crudRepo := crud.NewRepo(db)
	crudHandler := crud.NewHandler(crudRepo)
	crudHandler.RegisterRoutes(router.Group("/crud"))

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Println("HTTP API server listening on :8080")
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
