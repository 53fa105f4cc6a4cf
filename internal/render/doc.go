// Package render turns extracted definitions into text fragments and
// assembles the fragments into the generated document.
//
// A fragment is one `name: value` entry where value is a JavaScript template
// literal. The document itself comes from a caller-supplied Renderer, which
// receives the fragments as its only variable.
package render
