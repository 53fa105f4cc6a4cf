// Package config defines the format-agnostic model of the generator
// configuration file, along with the Loader interface implemented by the
// concrete file formats (HCL, YAML).
//
// The Model is the single source of truth for where machines are read from,
// where the generated module goes and which template renders it. Concrete
// loaders live in separate packages.
package config
