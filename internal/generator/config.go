package generator

import "errors"

// Config holds everything a run needs. There is no process-wide state; the
// caller builds a Config and passes it in.
type Config struct {
	// SourceDir is the directory holding the machine files.
	SourceDir string
	// OutputPath is the file the document replaces.
	OutputPath string
	// TemplatePath is the document template. When empty, Template is used.
	TemplatePath string
	// Template is the template source used when TemplatePath is empty.
	Template string
	// Marker is the identifier introducing a definition. Empty selects
	// extract.DefaultMarker.
	Marker string
	// Atomic selects temp-file + rename for the output.
	Atomic bool
}

// Validate checks that the required fields are set.
func (c Config) Validate() error {
	var errs []error
	if c.SourceDir == "" {
		errs = append(errs, errors.New("source directory is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if c.TemplatePath == "" && c.Template == "" {
		errs = append(errs, errors.New("either a template path or a template is required"))
	}
	return errors.Join(errs...)
}
