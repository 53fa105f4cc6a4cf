// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// SourceFile is one machine file read from the source directory.
type SourceFile struct {
	// Name is the base name without its extension. It becomes the key of the
	// generated entry and must be unique across a run.
	Name string
	// Content is the full text of the file.
	Content       string
	FSInformation *FSInfo
}

// Definition is the machine expression extracted from a SourceFile.
type Definition struct {
	Name string
	// Text is a contiguous substring of the source file content.
	Text          string
	FSInformation *FSInfo
}

// Fragment is a single rendered `name: value` entry.
type Fragment struct {
	Name string
	Text string
}
