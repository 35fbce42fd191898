// Package striptrail removes trailing newline bytes from files.
//
// It walks a directory tree sequentially, filters files by extension and
// exclude patterns, and strips the trailing run of LF and CR bytes from each
// qualifying file. Rewrites happen in place and are not atomic; writing to a
// temporary file and renaming it over the original would close that gap.
package striptrail
