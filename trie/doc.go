// Package trie defines a generic prefix tree mapping sequences of key
// symbols to values.
//
// A Trie consists of nodes. Every node may hold a value and owns a map from
// the next key symbol to a child node. The root node stands for the empty
// key sequence.
//
// Example trie:
// ------------
//
//	[root] -- 'A':[val:"Mike"] -- 'B':[val:"Rembrandt"] -- 'C':[val:"Steve"]
//	              |
//	              `-- 'X':[-] -- 'Y':[val:"Tom"]
//
// The trie above contains the following keys:
//
//   - "A"   -> "Mike"
//   - "AB"  -> "Rembrandt"
//   - "ABC" -> "Steve"
//   - "AXY" -> "Tom"
//
// Node "AX" is a waypoint: it was created on the way to "AXY" and holds no
// value, so looking up "AX" reports a miss.
//
// Only exact-match lookups are supported. A Trie is not safe for concurrent
// use: callers that share one between goroutines must guard the whole trie
// with their own lock (see the SyncTrie example).
package trie
