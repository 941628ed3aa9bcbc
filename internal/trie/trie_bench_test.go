package trie

import (
	"math/rand"
	"strings"
	"testing"
)

func generateRandomPaths(count, maxDepth int) []string {
	paths := make([]string, count)
	for i := 0; i < count; i++ {
		depth := rand.Intn(maxDepth) + 1
		parts := make([]string, depth)
		for j := 0; j < depth; j++ {
			parts[j] = string(rune('a' + rand.Intn(26)))
		}
		paths[i] = strings.Join(parts, "/")
	}
	return paths
}

func BenchmarkPathTrieMatch(b *testing.B) {
	sizes := []struct {
		name     string
		count    int
		maxDepth int
	}{
		{"Small", 100, 5},
		{"Medium", 1000, 10},
		{"Large", 10000, 20},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			skips := generateRandomPaths(size.count, size.maxDepth)
			queries := generateRandomPaths(size.count, size.maxDepth)
			pt := NewPathTrie()
			for _, p := range skips {
				pt.Insert(p)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				pt.Match(queries[i%len(queries)])
			}
		})
	}
}
