package trie

// node is a single trie vertex. ok tells a stored zero value apart from
// a waypoint that never received one.
type node[K comparable, V any] struct {
	val      V
	ok       bool
	children map[K]*node[K, V] // allocated on the first child
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{}
}

func newNodeWithValue[K comparable, V any](val V) *node[K, V] {
	return &node[K, V]{val: val, ok: true}
}

// put stores val at the end of the key path, creating missing nodes
// along the way.
func (n *node[K, V]) put(key []K, val V) {
	if len(key) == 0 {
		n.val, n.ok = val, true
		return
	}

	child, found := n.children[key[0]]
	if found {
		child.put(key[1:], val)
		return
	}

	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}

	if len(key) == 1 {
		n.children[key[0]] = newNodeWithValue[K, V](val) // last symbol
		return
	}

	child = newNode[K, V]()
	n.children[key[0]] = child
	child.put(key[1:], val)
}

// get returns the value stored at the exact key path.
func (n *node[K, V]) get(key []K) (V, bool) {
	if len(key) == 0 {
		return n.val, n.ok
	}

	child, found := n.children[key[0]]
	if !found {
		var zero V
		return zero, false // the path runs out here
	}

	return child.get(key[1:])
}
