package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/extract"
	"github.com/vk/machinegen/internal/model"
	"github.com/vk/machinegen/internal/output"
	"github.com/vk/machinegen/internal/render"
	"github.com/vk/machinegen/internal/source"
)

// Result describes a successful run.
type Result struct {
	// Names lists the generated entries in output order.
	Names    []string
	Document string
}

// Generate builds the document without writing it.
func Generate(ctx context.Context, cfg Config, r render.Renderer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	logger := ctxlog.FromContext(ctx)

	files, err := source.Load(ctx, cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	ex := extract.New(cfg.Marker)
	logger.Debug("Extracting definitions.", "files", len(files), "marker", ex.Marker())
	defs, err := ex.ExtractAll(ctx, files)
	if err != nil {
		return nil, err
	}
	if err := render.CheckUnique(defs); err != nil {
		return nil, err
	}

	tmpl, err := loadTemplate(cfg)
	if err != nil {
		return nil, err
	}

	fragments := render.Fragments(defs)
	doc, err := render.Assemble(ctx, r, tmpl, fragments)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fragments))
	for _, f := range fragments {
		names = append(names, f.Name)
	}
	logger.Debug("Document generated.", "entries", len(names), "names", names)
	return &Result{Names: names, Document: doc}, nil
}

// Run generates the document and writes it to cfg.OutputPath.
func Run(ctx context.Context, cfg Config, r render.Renderer) (*Result, error) {
	res, err := Generate(ctx, cfg, r)
	if err != nil {
		return nil, err
	}
	w := output.New(output.Options{Atomic: cfg.Atomic})
	if err := w.WriteFile(ctx, cfg.OutputPath, res.Document); err != nil {
		return nil, err
	}
	return res, nil
}

func loadTemplate(cfg Config) (string, error) {
	if cfg.TemplatePath == "" {
		return cfg.Template, nil
	}
	b, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", model.ErrTemplateFailure, cfg.TemplatePath, err)
	}
	return string(b), nil
}
