package trie

// KV is a key-value pair used to seed a new Trie.
type KV[K comparable, V any] struct {
	Key []K
	Val V
}

// Trie maps key sequences to values. The zero value is an empty trie
// ready to use.
type Trie[K comparable, V any] struct {
	root node[K, V]
}

// New returns an empty trie populated with the given pairs in order.
func New[K comparable, V any](init ...KV[K, V]) *Trie[K, V] {
	var t = &Trie[K, V]{}

	for _, kv := range init {
		t.Put(kv.Key, kv.Val)
	}

	return t
}

// Put associates val with key, replacing any previous value. An empty key
// addresses the root. The key slice is neither modified nor retained.
func (t *Trie[K, V]) Put(key []K, val V) {
	t.root.put(key, val)
}

// Get returns the value stored at exactly key. The boolean is false when
// no value was ever put there, including prefixes of longer keys.
func (t *Trie[K, V]) Get(key []K) (V, bool) {
	return t.root.get(key)
}
