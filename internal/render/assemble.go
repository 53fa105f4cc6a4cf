package render

import (
	"context"
	"fmt"

	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/model"
	"golang.org/x/text/unicode/norm"
)

// CheckUnique fails with model.ErrDuplicateName when two definitions share a
// name. Names are compared in Unicode NFC, so a decomposed and a composed
// spelling of the same name collide. Both source files are named in the error.
func CheckUnique(defs []*model.Definition) error {
	seen := make(map[string]*model.Definition, len(defs))
	for _, d := range defs {
		key := norm.NFC.String(d.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q from %s and %s",
				model.ErrDuplicateName, d.Name, prev.FSInformation.Path(), d.FSInformation.Path())
		}
		seen[key] = d
	}
	return nil
}

// Assemble renders fragments into the document described by template.
func Assemble(ctx context.Context, r Renderer, template string, fragments []model.Fragment) (string, error) {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}

	doc, err := r.Render(ctx, template, Variables{Fragments: texts})
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrTemplateFailure, err)
	}
	ctxlog.FromContext(ctx).Debug("Document assembled.", "entries", len(texts), "bytes", len(doc))
	return doc, nil
}
