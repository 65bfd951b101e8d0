package main

import (
	"fmt"

	"github.com/aglyzov/go-trie/trie"
)

func main() {
	t := trie.New[byte, string]()
	t.Put([]byte("ABC"), "Steve")
	t.Put([]byte("AB"), "Rembrandt")
	t.Put([]byte("A"), "Mike")
	t.Put([]byte("AXY"), "Tom")

	for _, key := range []string{"A", "AB", "ABC", "AX", "AXY", "B", ""} {
		val, ok := t.Get([]byte(key))
		fmt.Printf("Get(%q) -> %q, %v\n", key, val, ok)
	}

	println("------")

	t.Put(nil, "root")
	t.Put([]byte("AB"), "Rubens") // replace

	for _, key := range []string{"", "AB"} {
		val, ok := t.Get([]byte(key))
		fmt.Printf("Get(%q) -> %q, %v\n", key, val, ok)
	}
}
