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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/bootstrap"
	"github.com/BruksfildServices01/barber-turnos/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-turnos/internal/db"
	"github.com/BruksfildServices01/barber-turnos/internal/metrics"
	"github.com/BruksfildServices01/barber-turnos/internal/routes"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.SetDefault(cfg.DefaultTimezone)

	db := dbpkg.NewDB(cfg)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	extras, err := bootstrap.NewReaperExtras(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to set up reaper dependencies: %v", err)
	}
	defer extras.Close()

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Audit:    auditDispatcher,
		Metrics:  m,
		Clock:    timezone.SystemClock{},
		Lock:     extras.Lock,
		Archiver: extras.Archiver,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
