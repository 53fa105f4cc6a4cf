package render

import "context"

// Variables is the data handed to a document template.
type Variables struct {
	// Fragments holds one rendered entry per machine, in output order.
	Fragments []string
}

// Renderer turns a template source and its variables into the final text.
type Renderer interface {
	Render(ctx context.Context, template string, vars Variables) (string, error)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(template string, vars Variables) (string, error)

// Render implements Renderer.
func (f RenderFunc) Render(_ context.Context, template string, vars Variables) (string, error) {
	return f(template, vars)
}
