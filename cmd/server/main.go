package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "voicegst/docs"
	"voicegst/internal/config"
	"voicegst/internal/gst"
	"voicegst/internal/handler"
	"voicegst/internal/logger"
	"voicegst/internal/metrics"
	"voicegst/internal/router"
	"voicegst/internal/service"
)

// @title                     VoiceGST API
// @version                   1.0
// @description               GST calculation, GSTIN validation, GSTR-1 export and voice command interpretation.
// @BasePath                  /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	m := metrics.New()

	calc := gst.NewCalculator(
		gst.WithDefaultRate(cfg.GST.DefaultRate),
		gst.WithStrictRates(cfg.GST.StrictRates),
	)
	gstSvc := service.NewGSTService(calc, m, zl)

	// Initialize handlers
	gstH := handler.NewGSTHandler(gstSvc, zl)
	cmdH := handler.NewCommandHandler(gstSvc, zl)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, zl, m, gstH, cmdH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.String("default_rate", cfg.GST.DefaultRate.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		zl.Info("shutting down server", zap.String("signal", sig.String()))
	}

	healthH.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	zl.Info("server exited")
	return nil
}
