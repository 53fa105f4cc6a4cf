// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory records that flow through the
// generation pipeline, from the raw machine files on disk to the text
// fragments that end up in the generated module.
//
// # Core Concepts
//
//   - SourceFile: one regular file from the machines directory, carrying its
//     logical name (base name without extension) and its full text.
//
//   - Definition: the machine expression located inside a SourceFile. The
//     text is opaque; nothing downstream parses it.
//
//   - Fragment: the rendered `name: value` entry for one Definition.
//
//   - FSInfo: metadata that links every record back to the file it came
//     from, so every failure can name the offending file.
//
// Records are created, transformed and dropped within a single run. Each
// stage owns its output until it hands it to the next one.
package model
