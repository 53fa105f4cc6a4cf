// Package source loads the machine files of a directory into an ordered list
// of model.SourceFile records.
//
// Only regular files directly inside the directory are considered. The
// result is ordered by natural, case-insensitive comparison of the logical
// names, so `file2` comes before `file10` no matter what order the file
// system lists them in.
package source
