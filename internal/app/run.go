package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/generator"
	"github.com/vk/machinegen/internal/hcl"
)

// Run performs one generation pass.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	settings, err := a.LoadSettings(ctx)
	if err != nil {
		return err
	}

	genCfg := generator.Config{
		SourceDir:    settings.SourceDir,
		OutputPath:   settings.OutputPath,
		TemplatePath: settings.TemplatePath,
		Template:     hcl.DefaultTemplate,
		Marker:       settings.Marker,
		Atomic:       settings.Atomic(),
	}
	renderer := hcl.NewTemplateRenderer(settings.TemplatePath)

	if a.config.DryRun {
		res, err := generator.Generate(ctx, genCfg, renderer)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if _, err := io.WriteString(a.outW, res.Document); err != nil {
			return fmt.Errorf("failed to print document: %w", err)
		}
		a.logger.Info("Dry run finished, nothing written.", "entries", len(res.Names))
		return nil
	}

	res, err := generator.Run(ctx, genCfg, renderer)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	a.logger.Info("Machine strings generated.", "entries", len(res.Names), "output", settings.OutputPath)

	a.logger.Debug("App.Run method finished.")
	return nil
}
