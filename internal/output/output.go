// Package output writes the generated document to disk.
//
// By default the document goes to a temporary file in the target directory
// which is synced and then renamed over the destination, so a crash never
// leaves a truncated file behind. The parent directory must already exist.
package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/model"
)

const defaultPerm os.FileMode = 0o644

// Options configures a Writer.
type Options struct {
	// Atomic selects temp-file + rename. When false the destination is
	// truncated and written in place.
	Atomic bool
}

// Writer writes whole documents to a path, replacing what was there.
type Writer struct {
	atomic bool
	perm   os.FileMode
}

// New creates a Writer.
func New(opts Options) *Writer {
	return &Writer{atomic: opts.Atomic, perm: defaultPerm}
}

// WriteFile replaces the content of path with doc. Every failure wraps
// model.ErrWriteFailure.
func (w *Writer) WriteFile(ctx context.Context, path, doc string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if w.atomic {
		err = w.writeAtomic(path, doc)
	} else {
		err = w.writeOverwrite(path, doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrWriteFailure, path, err)
	}

	ctxlog.FromContext(ctx).Debug("Output written.", "path", path, "bytes", len(doc), "atomic", w.atomic)
	return nil
}

func (w *Writer) writeOverwrite(path, doc string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.perm)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := io.Copy(bw, strings.NewReader(doc)); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) writeAtomic(path, doc string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".machinegen-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := tmp.Chmod(w.perm); err != nil {
		return fail(err)
	}
	bw := bufio.NewWriter(tmp)
	if _, err := io.Copy(bw, strings.NewReader(doc)); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	// Best effort: persist the rename itself.
	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
