package hcl

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// DefaultTemplate renders a TypeScript module exporting every machine as a
// string constant.
//
//go:embed templates/examples.ts.tmpl
var DefaultTemplate string

// FragmentsVar is the name under which the fragments are exposed to templates.
const FragmentsVar = "fragments"

// TemplateRenderer evaluates HCL string templates. The only variable in scope
// is `fragments`, a list of strings.
type TemplateRenderer struct {
	// Filename is used in diagnostics.
	Filename string
}

// NewTemplateRenderer creates a renderer reporting diagnostics against filename.
func NewTemplateRenderer(filename string) *TemplateRenderer {
	if filename == "" {
		filename = "<template>"
	}
	return &TemplateRenderer{Filename: filename}
}

var _ render.Renderer = (*TemplateRenderer)(nil)

// Render implements render.Renderer.
func (r *TemplateRenderer) Render(ctx context.Context, src string, vars render.Variables) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rendering HCL template.", "template", r.Filename, "fragments", len(vars.Fragments))

	expr, diags := hclsyntax.ParseTemplate([]byte(src), r.Filename, hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to parse template %s: %w", r.Filename, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			FragmentsVar: fragmentsValue(vars.Fragments),
		},
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate template %s: %w", r.Filename, diags)
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("template %s did not produce a string: %w", r.Filename, err)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", errors.New("template " + r.Filename + " produced no value")
	}
	return val.AsString(), nil
}

func fragmentsValue(fragments []string) cty.Value {
	if len(fragments) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(fragments))
	for _, f := range fragments {
		vals = append(vals, cty.StringVal(f))
	}
	return cty.ListVal(vals)
}
