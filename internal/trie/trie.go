package trie

import (
	"path/filepath"
	"sort"
	"strings"
)

/*
Arena-based path trie.

Nodes live in one slice and refer to their children by index, so a trie built
from a long skip list costs a single growing allocation instead of one per
node. Keys are path segments, which makes "is this path inside a skipped
directory" a walk down at most len(segments) nodes.
*/

// NodeIndex is the index of a node in the arena.
type NodeIndex int

// Arena stores all nodes of one trie. Index 0 is the root.
type Arena struct {
	nodes []arenaNode
}

type arenaNode struct {
	children map[string]NodeIndex
	// isEnd marks the last segment of an inserted sequence.
	isEnd bool
}

// NewArena creates an arena holding only the root.
func NewArena() *Arena {
	arena := &Arena{
		nodes: make([]arenaNode, 0, 64),
	}
	arena.nodes = append(arena.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return arena
}

func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return idx
}

// Insert adds sequence to the trie.
func (a *Arena) Insert(sequence []string) {
	current := NodeIndex(0)
	for _, part := range sequence {
		childIdx, exists := a.nodes[current].children[part]
		if !exists {
			childIdx = a.newNode()
			a.nodes[current].children[part] = childIdx
		}
		current = childIdx
	}
	a.nodes[current].isEnd = true
}

// HasPrefixOf reports whether some inserted sequence is a prefix of sequence
// (or equal to it).
func (a *Arena) HasPrefixOf(sequence []string) bool {
	current := NodeIndex(0)
	if a.nodes[current].isEnd {
		return true
	}
	for _, part := range sequence {
		next, ok := a.nodes[current].children[part]
		if !ok {
			return false
		}
		if a.nodes[next].isEnd {
			return true
		}
		current = next
	}
	return false
}

// Len returns the number of nodes, root included.
func (a *Arena) Len() int { return len(a.nodes) }

// DebugString renders the trie with sorted children, for tests.
func (a *Arena) DebugString() string {
	return a.debugStringNode(NodeIndex(0))
}

func (a *Arena) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.isEnd {
		sb.WriteString("*")
	}

	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(node.children[key]))
		sb.WriteString(")")
	}

	return sb.String()
}

// PathTrie matches filesystem paths against a set of path prefixes.
// The zero value is not usable; call NewPathTrie.
type PathTrie struct {
	arena *Arena
	size  int
}

// NewPathTrie returns an empty PathTrie.
func NewPathTrie() *PathTrie {
	return &PathTrie{arena: NewArena()}
}

// Insert adds path as a prefix.
func (t *PathTrie) Insert(path string) {
	t.arena.Insert(Segments(path))
	t.size++
}

// Match reports whether path equals an inserted path or lies beneath one.
func (t *PathTrie) Match(path string) bool {
	if t.size == 0 {
		return false
	}
	return t.arena.HasPrefixOf(Segments(path))
}

// Len returns the number of inserted paths.
func (t *PathTrie) Len() int { return t.size }

// DebugString renders the underlying trie.
func (t *PathTrie) DebugString() string { return t.arena.DebugString() }

// Segments splits a cleaned, slash-separated form of path. Absolute paths
// start with an empty segment so they never collide with relative ones.
func Segments(path string) []string {
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." {
		return nil
	}
	if clean == "/" {
		return []string{""}
	}
	return strings.Split(clean, "/")
}
