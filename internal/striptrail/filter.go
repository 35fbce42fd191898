package striptrail

import (
	"path/filepath"
	"strings"
)

// binaryExtensions is the fixed deny-list of extensions presumed non-text.
// Files with these extensions are always skipped, even when the extension is
// explicitly allow-listed.
//
//nolint:gochecknoglobals // Config constant
var binaryExtensions = map[string]struct{}{
	// Executables and libraries
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {}, ".obj": {}, ".o": {},
	// Images
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".svg": {},
	// Audio/video
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".wav": {}, ".flac": {},
	// Archives
	".zip": {}, ".tar": {}, ".gz": {}, ".rar": {}, ".7z": {},
	// Office documents
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
}

// Filter decides whether a path qualifies for processing.
type Filter struct {
	extensions map[string]struct{}
	excludes   []string
}

// NewFilter builds a filter from raw extension and exclude lists.
// Extensions are normalized via NormalizeExtension; an empty list means all
// extensions are eligible, subject to the binary deny-list.
func NewFilter(extensions, excludes []string) *Filter {
	filter := &Filter{excludes: excludes}

	if len(extensions) > 0 {
		filter.extensions = make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			filter.extensions[NormalizeExtension(ext)] = struct{}{}
		}
	}

	return filter
}

// NormalizeExtension lowercases ext and prefixes it with a dot if missing.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.Trim(ext, "'\""))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// Qualifies reports whether the file at path should be processed.
// Exclude patterns are plain substrings matched against the path string,
// not globs or regexes.
func (f *Filter) Qualifies(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	if f.extensions != nil {
		if _, ok := f.extensions[ext]; !ok {
			return false
		}
	}

	for _, pattern := range f.excludes {
		if strings.Contains(path, pattern) {
			return false
		}
	}

	if _, ok := binaryExtensions[ext]; ok {
		return false
	}

	return true
}
