// Package extract locates the embedded machine definition inside the free-form
// text of a machine file.
//
// The definition starts at the marker identifier immediately followed by an
// opening parenthesis and ends at the delimiter that balances it. Brackets,
// braces and parentheses are counted; string literals and comments are
// skipped so a stray ')' inside a label never ends the span early.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/model"
)

// DefaultMarker is the identifier that introduces a machine definition.
const DefaultMarker = "Machine"

// Extractor pulls one Definition out of each SourceFile.
type Extractor struct {
	marker string
}

// New creates an Extractor for marker. An empty marker selects DefaultMarker.
func New(marker string) *Extractor {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Extractor{marker: marker}
}

// Marker returns the identifier the extractor searches for.
func (e *Extractor) Marker() string {
	return e.marker
}

// Extract returns the definition embedded in file.
func (e *Extractor) Extract(ctx context.Context, file *model.SourceFile) (*model.Definition, error) {
	path := file.FSInformation.Path()
	start, end, err := Span(file.Content, e.marker)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (marker %q)", err, path, e.marker)
	}

	ctxlog.FromContext(ctx).Debug("Extracted machine definition.",
		"name", file.Name, "file", path, "offset", start, "bytes", end-start)

	return &model.Definition{
		Name:          file.Name,
		Text:          file.Content[start:end],
		FSInformation: file.FSInformation,
	}, nil
}

// ExtractAll runs Extract over files in order and stops at the first failure.
func (e *Extractor) ExtractAll(ctx context.Context, files []*model.SourceFile) ([]*model.Definition, error) {
	defs := make([]*model.Definition, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := e.Extract(ctx, f)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Span returns the byte range [start, end) of the first balanced definition
// introduced by marker in content. It reports model.ErrNoDefinitionFound when
// marker never appears followed by '(' and model.ErrUnbalancedDefinition when
// no occurrence closes before the end of content.
func Span(content, marker string) (int, int, error) {
	opener := marker + "("
	from := 0
	found := false
	for {
		i := strings.Index(content[from:], opener)
		if i < 0 {
			break
		}
		found = true
		start := from + i
		if end, ok := scanBalanced(content, start+len(marker)); ok {
			return start, end, nil
		}
		from = start + len(opener)
	}
	if found {
		return 0, 0, model.ErrUnbalancedDefinition
	}
	return 0, 0, model.ErrNoDefinitionFound
}
