package striptrail

import (
	"fmt"
	"os"
)

// Trim strips the trailing run of '\n' and '\r' bytes from content.
// A trailing "\r\n" pair is removed in one step; any other trailing CR or LF
// byte is removed on its own. The loop runs until the content is empty or no
// longer ends in a newline byte, so mixed runs like "\r\n\n\r" and bare '\r'
// runs are fully collapsed.
//
// Returns the trimmed content and the number of bytes removed.
func Trim(content []byte) ([]byte, int) {
	original := len(content)

	for len(content) > 0 {
		last := content[len(content)-1]
		if last != '\n' && last != '\r' {
			break
		}

		if last == '\n' && len(content) >= 2 && content[len(content)-2] == '\r' {
			content = content[:len(content)-2]
		} else {
			content = content[:len(content)-1]
		}
	}

	return content, original - len(content)
}

// Process reads the file at path, computes the trim, and rewrites the file in
// place unless dryRun is set. When nothing needs removing the file is never
// opened for writing. Permission bits are preserved on rewrite.
func Process(path string, dryRun bool) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading file: %w", err)
	}

	trimmed, removed := Trim(content)
	if removed == 0 {
		return Result{}, nil
	}

	if !dryRun {
		perm := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			perm = info.Mode().Perm()
		}

		if err := os.WriteFile(path, trimmed, perm); err != nil {
			return Result{}, fmt.Errorf("writing file: %w", err)
		}
	}

	return Result{Modified: true, BytesRemoved: removed}, nil
}
