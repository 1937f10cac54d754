// SPDX-License-Identifier: MIT

// Command splined serves interactive spline editing sessions over HTTP and
// websockets. Configuration comes from SPLINED_* environment variables.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvspline/internal/config"
	"github.com/katalvlaran/lvspline/internal/editor"
	"github.com/katalvlaran/lvspline/render"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store := editor.NewStore(cfg.SessionTTL, cfg.CleanupInterval, logger)
	handler := editor.NewHandler(store, editor.Options{
		CanvasWidth:    cfg.CanvasWidth,
		CanvasHeight:   cfg.CanvasHeight,
		MaxPoints:      cfg.MaxPoints,
		MaxColumns:     cfg.MaxColumns,
		HitRadius:      cfg.HitRadius,
		OriginPatterns: cfg.OriginPatterns,
		Render:         render.DefaultOptions(),
	}, logger)

	r := mux.NewRouter()
	r.Use(editor.Recovery(logger))
	r.Use(editor.Logger(logger))
	handler.Routes(r)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server", "sessions", store.Len())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
		store.Flush()
	}()

	slog.Info("server starting", "addr", srv.Addr, "canvas", []float64{cfg.CanvasWidth, cfg.CanvasHeight})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
