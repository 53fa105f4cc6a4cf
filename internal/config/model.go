package config

import (
	"path/filepath"
)

// Default values used when the configuration leaves an attribute unset.
const (
	DefaultSourceDir  = "public/machines"
	DefaultOutputPath = "src/examples.ts"
	DefaultMarker     = "Machine"
)

// Model is the agnostic representation of the generator configuration.
type Model struct {
	SourceDir  string
	OutputPath string
	// TemplatePath is empty when the built-in template should be used.
	TemplatePath string
	Marker       string
	AtomicWrite  *bool
}

// Defaults returns a Model populated with the default values.
func Defaults() *Model {
	atomic := true
	return &Model{
		SourceDir:   DefaultSourceDir,
		OutputPath:  DefaultOutputPath,
		Marker:      DefaultMarker,
		AtomicWrite: &atomic,
	}
}

// Merge returns a copy of m with every attribute that is set in over
// replacing the corresponding attribute of m.
func (m Model) Merge(over *Model) *Model {
	if over == nil {
		return &m
	}
	if over.SourceDir != "" {
		m.SourceDir = over.SourceDir
	}
	if over.OutputPath != "" {
		m.OutputPath = over.OutputPath
	}
	if over.TemplatePath != "" {
		m.TemplatePath = over.TemplatePath
	}
	if over.Marker != "" {
		m.Marker = over.Marker
	}
	if over.AtomicWrite != nil {
		v := *over.AtomicWrite
		m.AtomicWrite = &v
	}
	return &m
}

// Resolve returns a copy of m whose relative paths are joined to baseDir.
func (m Model) Resolve(baseDir string) *Model {
	m.SourceDir = resolvePath(baseDir, m.SourceDir)
	m.OutputPath = resolvePath(baseDir, m.OutputPath)
	m.TemplatePath = resolvePath(baseDir, m.TemplatePath)
	return &m
}

// Atomic reports whether the output should be replaced atomically. Unset
// means true.
func (m *Model) Atomic() bool {
	return m.AtomicWrite == nil || *m.AtomicWrite
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
