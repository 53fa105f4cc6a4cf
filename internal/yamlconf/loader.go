// Package yamlconf provides the YAML implementation of config.Loader.
package yamlconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/machinegen/internal/config"
	"github.com/vk/machinegen/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type configFile struct {
	SourceDir    string `yaml:"source_dir"`
	OutputPath   string `yaml:"output_path"`
	TemplatePath string `yaml:"template_path"`
	Marker       string `yaml:"marker"`
	AtomicWrite  *bool  `yaml:"atomic_write"`
}

// Loader reads `.yaml` / `.yml` configuration files.
type Loader struct{}

// NewLoader creates a new YAML config loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load decodes the YAML file at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("Loading YAML config.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var parsed configFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	return &config.Model{
		SourceDir:    parsed.SourceDir,
		OutputPath:   parsed.OutputPath,
		TemplatePath: parsed.TemplatePath,
		Marker:       parsed.Marker,
		AtomicWrite:  parsed.AtomicWrite,
	}, nil
}
