package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "katalog/docs"
	bookmemory "katalog/pkg/book/memory"
	"katalog/pkg/catalog"
	"katalog/pkg/config"
	"katalog/pkg/httpapi"
	"katalog/pkg/ledger"
	"katalog/pkg/logger"
	ordermemory "katalog/pkg/order/memory"
	"katalog/pkg/otel"
)

// @title Katalog Buku API
// @version 1.0
// @description Book catalog and ordering service
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	if err := run(log, cfg); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.Logger, cfg config.Config) error {
	ctx := context.Background()

	otelCfg := otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTELHost,
		Stdout:      cfg.OTELStdout,
		Probability: cfg.OTELProbability,
	}
	tp, shutdownTracing, err := otel.InitTracing(log, otelCfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	shutdownMetrics, err := otel.InitMetrics(log, otelCfg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer shutdownMetrics(context.Background())

	books := catalog.New(bookmemory.New(), log)
	orders := ledger.New(ordermemory.New(), books, log)

	api := httpapi.New(httpapi.Config{
		Catalog:        books,
		Ledger:         orders,
		Log:            log,
		Tracer:         tp.Tracer(cfg.ServiceName),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		log.Info(ctx, "shutdown started", "signal", sig.String())
		defer log.Info(ctx, "shutdown complete", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownGrace)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
