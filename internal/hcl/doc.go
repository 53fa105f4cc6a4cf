// Package hcl provides the HCL implementations used by the generator: a
// config.Loader for `.hcl` configuration files and a render.Renderer that
// evaluates HCL string templates. The built-in document template is embedded
// here as well.
package hcl
