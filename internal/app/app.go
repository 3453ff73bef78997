package app

import (
	"io"
	"log/slog"

	"github.com/vk/golaunch/internal/index"
	"github.com/vk/golaunch/internal/launch"
	"github.com/vk/golaunch/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	ix       *index.Index
	loader   launch.Loader
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. The
// plan is written to outW; logs go to errW so the two streams never mix.
func NewApp(outW, errW io.Writer, cfg *Config, ix *index.Index, loader launch.Loader, providers ...registry.Provider) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(providers) == 0 {
		providers = coreDescriptions
	}
	for _, p := range providers {
		p.Register(reg)
	}
	logger.Debug("All built-in descriptions registered.", "count", len(providers))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		ix:       ix,
		loader:   loader,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
