package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaInsert(t *testing.T) {
	t.Parallel()
	a := NewArena()
	a.Insert([]string{"a", "b", "c"})
	a.Insert([]string{"a", "b", "d"})
	a.Insert([]string{"x"})

	assert.Equal(t, "a(b(c(*)d(*)))x(*)", a.DebugString())
	assert.Equal(t, 6, a.Len())
}

func TestArenaHasPrefixOf(t *testing.T) {
	t.Parallel()
	a := NewArena()
	a.Insert([]string{"src", "legacy"})

	assert.True(t, a.HasPrefixOf([]string{"src", "legacy"}))
	assert.True(t, a.HasPrefixOf([]string{"src", "legacy", "old.php"}))
	assert.False(t, a.HasPrefixOf([]string{"src"}))
	assert.False(t, a.HasPrefixOf([]string{"src", "legacy2"}))
	assert.False(t, a.HasPrefixOf(nil))
}

func TestPathTrieMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		prefix []string
		path   string
		want   bool
	}{
		{"empty trie", nil, "src/a.php", false},
		{"exact file", []string{"src/a.php"}, "src/a.php", true},
		{"inside dir", []string{"src/vendor"}, "src/vendor/lib/x.php", true},
		{"sibling with shared prefix", []string{"src/vendor"}, "src/vendored/x.php", false},
		{"unclean input", []string{"src/./vendor/"}, "src/vendor/x.php", true},
		{"absolute", []string{"/project/src/cache"}, "/project/src/cache/a.php", true},
		{"absolute vs relative", []string{"/src"}, "src/a.php", false},
		{"dot skips everything", []string{"."}, "src/a.php", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pt := NewPathTrie()
			for _, p := range tt.prefix {
				pt.Insert(p)
			}
			assert.Equal(t, tt.want, pt.Match(tt.path))
			assert.Equal(t, len(tt.prefix), pt.Len())
		})
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Segments("."))
	assert.Equal(t, []string{""}, Segments("/"))
	assert.Equal(t, []string{"", "a", "b"}, Segments("/a//b/"))
	assert.Equal(t, []string{"a", "b"}, Segments("a/b"))
}

func TestPathTrieDebugString(t *testing.T) {
	t.Parallel()
	pt := NewPathTrie()
	pt.Insert("src/vendor")
	pt.Insert("src/./cache/")
	pt.Insert("/tmp")

	// absolute paths hang off the empty root segment
	assert.Equal(t, "(tmp(*))src(cache(*)vendor(*))", pt.DebugString())
}
