// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// Every record produced by the pipeline keeps the path it was read from. A
// failure several stages later (a missing marker, a duplicate name) can then
// point at the exact file on disk instead of only the logical name.
package model

// FSInfo links a record back to its source file.
type FSInfo struct {
	FilePath string
}

// NewFSInfo creates FSInfo for the given path.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// Path returns the file path or an empty string for a nil receiver.
func (i *FSInfo) Path() string {
	if i == nil {
		return ""
	}
	return i.FilePath
}
