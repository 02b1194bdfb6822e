// README: Entry point; loads config, wires the model provider and itinerary pipeline, starts HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	httptransport "tripgen/internal/http"
	"tripgen/internal/infra"
	"tripgen/internal/itinerary"
	"tripgen/internal/maps"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tripgen-api:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(cfg.Log, os.Stdout)

	flushSentry, err := infra.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment)
	if err != nil {
		logger.Warn().Err(err).Msg("sentry disabled")
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, closeGen, err := ai.NewTextGenerator(ctx, cfg.AI)
	if err != nil {
		return err
	}
	defer closeGen()

	opts := []itinerary.Option{itinerary.WithLogger(logger.With().Str("component", "itinerary").Logger())}
	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		opts = append(opts, itinerary.WithTravelHinter(routes))
		logger.Info().Msg("travel hints enabled")
	}
	svc := itinerary.NewService(gen, opts...)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}
	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:      logger,
		Itinerary:   svc,
		StaticDir:   cfg.HTTP.StaticDir,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Str("provider", cfg.AI.Provider).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
