package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path into the agnostic model.
	// Attributes absent from the file are left at their zero value.
	Load(ctx context.Context, path string) (*Model, error)
}
