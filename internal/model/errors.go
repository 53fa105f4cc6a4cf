package model

import "errors"

// Error taxonomy of a generation run. Every failure aborts the run; callers
// match with errors.Is.
var (
	ErrDirectoryNotFound    = errors.New("source directory not found")
	ErrReadFailure          = errors.New("read failure")
	ErrNoDefinitionFound    = errors.New("no machine definition found")
	ErrUnbalancedDefinition = errors.New("unbalanced machine definition")
	ErrDuplicateName        = errors.New("duplicate machine name")
	ErrTemplateFailure      = errors.New("template failure")
	ErrWriteFailure         = errors.New("write failure")
)
