package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/machinegen/internal/config"
	"github.com/vk/machinegen/internal/ctxlog"
)

// LoadSettings reads the generator config file and returns the effective
// settings with every relative path resolved against the file's directory.
func (a *App) LoadSettings(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	path := a.config.ConfigPath

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && !a.config.ConfigRequired {
		logger.Debug("Config file not found, using defaults.", "path", path)
		return config.Defaults().Resolve("."), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := a.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported config file extension %q for %s", ErrConfig, ext, path)
	}

	loaded, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	settings := config.Defaults().Merge(loaded).Resolve(filepath.Dir(path))
	logger.Debug("Config loaded.",
		"path", path,
		"source_dir", settings.SourceDir,
		"output_path", settings.OutputPath,
		"template_path", settings.TemplatePath,
		"marker", settings.Marker,
		"atomic_write", settings.Atomic(),
	)
	return settings, nil
}
