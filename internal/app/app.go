package app

import (
	"io"
	"log/slog"

	"github.com/vk/machinegen/internal/config"
	"github.com/vk/machinegen/internal/hcl"
	"github.com/vk/machinegen/internal/yamlconf"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
}

// NewApp is the constructor for the main application. The generated document
// goes to outW in dry-run mode; logs always go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	yamlLoader := yamlconf.NewLoader()
	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loaders: map[string]config.Loader{
			".hcl":  hcl.NewLoader(),
			".yaml": yamlLoader,
			".yml":  yamlLoader,
		},
	}
}
