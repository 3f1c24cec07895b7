// Package fieldtree turns flat lists of dotted-path field bindings into
// nested key trees. Code generators and the sample synthesizer share it.
package fieldtree

import (
	"strings"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

// Field is one leaf record: a dotted entity path and its source binding.
type Field struct {
	Path   string
	Source cocogen.SourceBinding
}

// Node is one tree node: either a leaf carrying the original field record,
// or an interior node with insertion-ordered children. The two cases are
// explicit rather than probed at runtime.
type Node struct {
	leaf     *Field
	keys     []string
	children map[string]*Node
}

// NewInterior creates an empty interior node.
func NewInterior() *Node {
	return &Node{children: make(map[string]*Node)}
}

// NewLeaf creates a leaf node for the given field.
func NewLeaf(f Field) *Node {
	return &Node{leaf: &f}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.leaf != nil
}

// Field returns the leaf's field record; nil for interior nodes.
func (n *Node) Field() *Field {
	return n.leaf
}

// Keys returns the interior node's child keys in insertion order.
func (n *Node) Keys() []string {
	return n.keys
}

// Child returns the child for key, or nil.
func (n *Node) Child(key string) *Node {
	if n.children == nil {
		return nil
	}

	return n.children[key]
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.keys)
}

// put inserts or replaces a child, keeping insertion order on first insert.
func (n *Node) put(key string, child *Node) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}

	n.children[key] = child
}

// Build places each field into a nested key tree. Paths split on ".", with
// segments trimmed and empty segments dropped; insertion order determines
// key order. When a later field's intermediate segment collides with an
// already-placed leaf, the leaf is replaced by an interior node and the
// earlier field is discarded.
func Build(fields []Field) *Node {
	root := NewInterior()

	for _, f := range fields {
		segments := splitPath(f.Path)
		if len(segments) == 0 {
			continue
		}

		node := root

		for _, seg := range segments[:len(segments)-1] {
			child := node.Child(seg)
			if child == nil || child.IsLeaf() {
				child = NewInterior()
				node.put(seg, child)
			}

			node = child
		}

		node.put(segments[len(segments)-1], NewLeaf(f))
	}

	return root
}

// Leaves re-flattens the tree into field records in key order. For trees
// built from disjoint paths this reproduces the input fields exactly.
func (n *Node) Leaves() []Field {
	if n.IsLeaf() {
		return []Field{*n.leaf}
	}

	var out []Field

	for _, key := range n.keys {
		out = append(out, n.children[key].Leaves()...)
	}

	return out
}

// LeafCount returns the number of leaves under n.
func (n *Node) LeafCount() int {
	if n.IsLeaf() {
		return 1
	}

	count := 0
	for _, key := range n.keys {
		count += n.children[key].LeafCount()
	}

	return count
}

func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	out := parts[:0]

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
