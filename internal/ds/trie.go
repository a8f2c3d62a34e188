package ds

import (
	"maps"
	"slices"
)

type Node[T any] struct {
	name     string
	value    T
	setted   bool
	children map[string]*Node[T]
}

func createNode[T any](name string) *Node[T] {
	return &Node[T]{
		name:     name,
		children: make(map[string]*Node[T]),
	}
}

// Trie stores values under paths of names, eg the subtags of a locale.
type Trie[T any] struct {
	root *Node[T]
}

func NewTrie[T any]() *Trie[T] {
	trie := Trie[T]{
		root: createNode[T](""),
	}
	return &trie
}

// Closest returns the value of the deepest node set along path and the
// number of names of path it consumed.
func (t *Trie[T]) Closest(path []string) (T, int, bool) {
	var (
		node  = t.root
		value T
		depth int
		found = node.setted
	)
	if found {
		value = node.value
	}
	for i, name := range path {
		n, ok := node.children[name]
		if !ok {
			break
		}
		node = n
		if node.setted {
			value, depth, found = node.value, i+1, true
		}
	}
	return value, depth, found
}

// Walk calls fn for every value set under prefix. Children are visited in
// lexical order.
func (t *Trie[T]) Walk(prefix []string, fn func(path []string, v T)) {
	node := t.root
	for _, name := range prefix {
		n, ok := node.children[name]
		if !ok {
			return
		}
		node = n
	}

	var walk func(n *Node[T], path []string)

	walk = func(n *Node[T], path []string) {
		if n.setted {
			fn(slices.Clone(path), n.value)
		}
		for _, name := range slices.Sorted(maps.Keys(n.children)) {
			walk(n.children[name], append(path, name))
		}
	}

	walk(node, slices.Clone(prefix))
}

func (t *Trie[T]) Register(path []string, value T) {
	node := t.root
	for _, name := range path {
		if node.children[name] == nil {
			node.children[name] = createNode[T](name)
		}
		node = node.children[name]
	}
	node.value = value
	node.setted = true
}
