// Package generator runs the single batch pass that turns a directory of
// machine files into one generated module.
//
// The pipeline is a straight line: load the directory, extract one
// definition per file, render fragments, check names are unique, render the
// document through the template and write it. The first failure aborts the
// run and nothing is written.
package generator
