package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/opusclip-demo/api/routes"
	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/appstate"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/internal/exports"
	"github.com/angelmondragon/opusclip-demo/internal/transition"
	"github.com/angelmondragon/opusclip-demo/internal/uploads"
	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/ids"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	backend, err := kvstore.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open storage backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage backend", err)
		}
	}()
	storage := kvstore.New(backend, logg, metrics.NewStorageMetrics(reg))

	idGen, err := ids.NewGenerator(1)
	if err != nil {
		logg.Error(ctx, "failed to create id generator", err)
		os.Exit(1)
	}

	data, err := dataaccess.NewService(dataaccess.ServiceParams{
		Storage:      storage,
		Logger:       logg,
		Metrics:      metrics.NewDataAccessMetrics(reg),
		IDs:          idGen,
		LatencyScale: cfg.Latency.Scale,
	})
	if err != nil {
		logg.Error(ctx, "failed to create data access service", err)
		os.Exit(1)
	}
	if err := data.Initialize(ctx); err != nil {
		logg.Error(ctx, "failed to initialize data", err)
		os.Exit(1)
	}

	store, err := appstate.New(ctx, appstate.Params{
		Data:      data,
		Storage:   storage,
		Logger:    logg,
		SaveDelay: cfg.Editor.SaveDelay,
		SeekStep:  cfg.Editor.SeekStep,
	})
	if err != nil {
		logg.Error(ctx, "failed to create app state store", err)
		os.Exit(1)
	}

	events, err := analytics.New(analytics.Params{
		Storage:   storage,
		Logger:    logg,
		MaxEvents: cfg.Analytics.MaxEvents,
	})
	if err != nil {
		logg.Error(ctx, "failed to create analytics log", err)
		os.Exit(1)
	}

	uploadService, err := uploads.NewService(uploads.ServiceParams{
		Projects:        store,
		Analytics:       events,
		Logger:          logg,
		ProcessingDelay: cfg.Uploads.ProcessingDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to create upload service", err)
		os.Exit(1)
	}

	exportService, err := exports.NewService(exports.ServiceParams{
		Projects:    data,
		Analytics:   events,
		Logger:      logg,
		RenderDelay: cfg.Exports.RenderDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to create export service", err)
		os.Exit(1)
	}

	transitions := transition.New(transition.Params{
		Logger:   logg,
		Metrics:  metrics.NewTransitionMetrics(reg),
		Window:   cfg.Transition.Window,
		NavDelay: cfg.Transition.NavDelay,
		Location: "/",
	})
	defer transitions.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Backend,
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			Storage:    backend,
			Gatherer:   reg,
			Data:       data,
			Store:      store,
			Transition: transitions,
			Analytics:  events,
			Uploads:    uploadService,
			Exports:    exportService,
		}),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
		}
	}
}
