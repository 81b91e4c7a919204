package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/internal/dataaccess"
	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/ids"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// environment is everything a command needs to operate on the stored data.
type environment struct {
	cfg     *config.Config
	logg    *logger.Logger
	backend kvstore.Backend
	data    dataaccess.Service
	events  *analytics.Log
}

func (e *environment) Close() error {
	if e == nil || e.backend == nil {
		return nil
	}
	return e.backend.Close()
}

type openFunc func(ctx context.Context) (*environment, error)

type commandContext struct {
	open   openFunc
	output string

	envOnce sync.Once
	env     *environment
	envErr  error
}

func newCommandContext(open openFunc) *commandContext {
	return &commandContext{open: open, output: outputAuto}
}

func (c *commandContext) ensureEnvironment(ctx context.Context) (*environment, error) {
	c.envOnce.Do(func() {
		c.env, c.envErr = c.open(ctx)
	})
	return c.env, c.envErr
}

func (c *commandContext) close() error {
	if c.env == nil {
		return nil
	}
	return c.env.Close()
}

// openEnvironment wires the same storage and data services the API server uses.
// Simulated latency is turned off; it only exists for interactive clients.
func openEnvironment(ctx context.Context) (env *environment, err error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logg := logger.New(logger.Options{
		ServiceName: "opusctl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	backend, err := kvstore.Open(ctx, cfg, logg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, backend.Close())
		}
	}()

	env, err = buildEnvironment(ctx, cfg, logg, backend)
	return env, err
}

func buildEnvironment(ctx context.Context, cfg *config.Config, logg *logger.Logger, backend kvstore.Backend) (*environment, error) {
	storage := kvstore.New(backend, logg, nil)

	idGen, err := ids.NewGenerator(2)
	if err != nil {
		return nil, err
	}
	data, err := dataaccess.NewService(dataaccess.ServiceParams{
		Storage: storage,
		Logger:  logg,
		IDs:     idGen,
	})
	if err != nil {
		return nil, err
	}
	if err := data.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	events, err := analytics.New(analytics.Params{
		Storage:   storage,
		Logger:    logg,
		MaxEvents: cfg.Analytics.MaxEvents,
	})
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, logg: logg, backend: backend, data: data, events: events}, nil
}
