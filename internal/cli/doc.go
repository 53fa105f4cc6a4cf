// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration.
//
// Source, output and template paths are deliberately not flags: they come
// from the generator config file so every invocation produces the same file.
package cli
