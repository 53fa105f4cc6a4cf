package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/fsutil"
	"github.com/vk/machinegen/internal/model"
)

// Load reads every regular file directly inside dir and returns them in
// natural order of their logical names. A file that can't be read as text
// aborts the whole load.
func Load(ctx context.Context, dir string) ([]*model.SourceFile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading machine files.", "dir", dir)

	ok, err := fsutil.IsDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrDirectoryNotFound, dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrDirectoryNotFound, dir)
	}

	entries, err := fsutil.ListRegularFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrDirectoryNotFound, dir, err)
	}

	files := make([]*model.SourceFile, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, e.Name())
		file, err := readFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Read machine file.", "file", path, "name", file.Name, "bytes", len(file.Content))
		files = append(files, file)
	}

	sortNatural(files)
	logger.Debug("Machine files loaded.", "count", len(files))
	return files, nil
}

func readFile(path string) (*model.SourceFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrReadFailure, path, err)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: %s: content is not valid UTF-8 text", model.ErrReadFailure, path)
	}
	return &model.SourceFile{
		Name:          Name(filepath.Base(path)),
		Content:       string(b),
		FSInformation: model.NewFSInfo(path),
	}, nil
}

// Name returns the logical name of a file: its base name without the last
// extension. A dotfile without any other dot keeps its whole name.
func Name(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return base
	}
	return name
}

// sortNatural orders files by logical name. Names that compare equal under
// the natural order fall back to byte order of the file path so the result
// never depends on directory listing order.
func sortNatural(files []*model.SourceFile) {
	order := fsutil.NewNaturalOrder()
	slices.SortFunc(files, func(a, b *model.SourceFile) int {
		if c := order.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.FSInformation.Path(), b.FSInformation.Path())
	})
}
