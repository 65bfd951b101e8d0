package trie

import (
	"github.com/brianvoe/gofakeit/v6"
)

const fakeSeed = 1234567890

// countNodes returns the number of nodes in the subtree rooted at n.
func countNodes[K comparable, V any](n *node[K, V]) int {
	total := 1

	for _, child := range n.children {
		total += countNodes(child)
	}

	return total
}

// countPrefixes returns the number of distinct prefixes of keys,
// the empty one included.
func countPrefixes(keys []string) int {
	var seen = map[string]struct{}{"": {}}

	for _, key := range keys {
		for i := 1; i <= len(key); i++ {
			seen[key[:i]] = struct{}{}
		}
	}

	return len(seen)
}

func getKeys(total, wordsPerKey int) []string {
	var (
		faker = gofakeit.New(fakeSeed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(wordsPerKey)
	}

	return keys
}
