package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/machinegen/internal/config"
	"github.com/vk/machinegen/internal/ctxlog"
)

// configFile is the top-level structure of a generator config file.
type configFile struct {
	SourceDir    string `hcl:"source_dir,optional"`
	OutputPath   string `hcl:"output_path,optional"`
	TemplatePath string `hcl:"template_path,optional"`
	Marker       string `hcl:"marker,optional"`
	AtomicWrite  *bool  `hcl:"atomic_write,optional"`
}

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL config loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses and decodes the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL config.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed configFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return &config.Model{
		SourceDir:    parsed.SourceDir,
		OutputPath:   parsed.OutputPath,
		TemplatePath: parsed.TemplatePath,
		Marker:       parsed.Marker,
		AtomicWrite:  parsed.AtomicWrite,
	}, nil
}
