package striptrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{".txt", ".txt"},
		{"txt", ".txt"},
		{".TXT", ".txt"},
		{"Py", ".py"},
		{`".md"`, ".md"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeExtension(tc.input))
	}
}

func TestFilter_ExtensionAllowList(t *testing.T) {
	filter := NewFilter([]string{".txt", "py"}, nil)

	assert.True(t, filter.Qualifies("dir/a.txt"))
	assert.True(t, filter.Qualifies("dir/b.py"))
	// Extension matching is case-insensitive.
	assert.True(t, filter.Qualifies("dir/c.TXT"))
	assert.False(t, filter.Qualifies("dir/d.go"))
	assert.False(t, filter.Qualifies("dir/noext"))
}

func TestFilter_EmptyAllowListAcceptsAll(t *testing.T) {
	filter := NewFilter(nil, nil)

	assert.True(t, filter.Qualifies("a.txt"))
	assert.True(t, filter.Qualifies("Makefile"))
	assert.True(t, filter.Qualifies("dir/sub/x.go"))
}

func TestFilter_ExcludeSubstrings(t *testing.T) {
	filter := NewFilter(nil, []string{"node_modules", "__pycache__"})

	assert.False(t, filter.Qualifies("project/node_modules/pkg/index.js"))
	assert.False(t, filter.Qualifies("src/__pycache__/mod.pyc"))
	assert.True(t, filter.Qualifies("src/app.py"))

	// Plain substring match, not a path-component match.
	assert.False(t, filter.Qualifies("my_node_modules_backup/a.txt"))
}

func TestFilter_BinaryDenyList(t *testing.T) {
	filter := NewFilter(nil, nil)

	for _, path := range []string{
		"a.exe", "b.png", "c.JPG", "d.zip", "e.pdf", "f.mp4", "g.docx", "h.so",
	} {
		assert.False(t, filter.Qualifies(path), "expected %s to be denied", path)
	}
}

func TestFilter_DenyListBeatsAllowList(t *testing.T) {
	// Explicitly allow-listing a binary extension does not override the deny-list.
	filter := NewFilter([]string{".png", ".txt"}, nil)

	assert.False(t, filter.Qualifies("image.png"))
	assert.True(t, filter.Qualifies("note.txt"))
}
