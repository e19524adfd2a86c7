// Package tree reconstructs the hierarchy implied by flat,
// level-annotated GEDCOM records.
//
// Records carry no open/close markers, only a nesting level relative
// to the previous lines. Build walks the records once in document
// order with a stack of the currently open ancestor path and attaches
// each record to the nearest ancestor exactly one level shallower.
//
// The tree is stored as an arena: a single append-only node slice
// with parent-child links held as indices into that slice. Index 0 is
// a synthetic root at level -1 whose children form the top-level
// forest; the root itself is never part of any output.
package tree

import "github.com/robin-pham/gedcom-2-json/parser"

// Root is the arena index of the synthetic root node.
const Root = 0

// Node is one record placed into the hierarchy. Children holds arena
// indices in arrival order; it is append-only during Build and fixed
// afterward.
type Node struct {
	Level    int
	Tag      string
	Pointer  string
	Data     string
	Line     int
	Children []int
}

// Tree is the built hierarchy. The zero value is not usable; obtain
// trees from Build. A Tree is immutable once Build returns.
type Tree struct {
	nodes []Node
}

// Build organizes records into a tree. Records must be in document
// order; Build does not re-sort.
//
// Each record is attached as a child of the nearest open ancestor
// whose level is exactly one less than its own. A record whose level
// jumps by more than one past the deepest open ancestor is attached
// nowhere, but it still becomes the active scope for subsequent
// records, so its own children attach to it even though the record
// itself stays unreachable from the root. Build never fails: any
// record sequence, including an empty one, produces a tree.
func Build(records []*parser.Record) *Tree {
	t := &Tree{nodes: make([]Node, 1, len(records)+1)}
	t.nodes[Root] = Node{Level: -1}

	stack := make([]int, 0, 16)
	stack = append(stack, Root)

	for _, rec := range records {
		idx := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			Level:   rec.Level,
			Tag:     rec.Tag,
			Pointer: rec.Pointer,
			Data:    rec.Data,
			Line:    rec.LineNumber,
		})

		// Unwind past closed sibling scopes. The root sits at level
		// -1 and record levels are non-negative, so the stack never
		// empties.
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t.nodes[top].Level >= rec.Level {
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}

		if t.nodes[top].Level == rec.Level-1 {
			t.nodes[top].Children = append(t.nodes[top].Children, idx)
		}

		stack = append(stack, top, idx)
	}

	return t
}

// Len reports the number of nodes in the arena, including the
// synthetic root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node at arena index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Roots returns the indices of the top-level forest, the children of
// the synthetic root, in document order.
func (t *Tree) Roots() []int {
	return t.nodes[Root].Children
}

// Walk visits the subtree rooted at index from in pre-order,
// left-to-right. The synthetic root itself is visited when from is
// Root; callers that want only real records should walk each entry of
// Roots instead. Walk stops early if fn returns false.
func (t *Tree) Walk(from int, fn func(i int, n Node) bool) {
	if !fn(from, t.nodes[from]) {
		return
	}
	for _, child := range t.nodes[from].Children {
		if !t.walk(child, fn) {
			return
		}
	}
}

func (t *Tree) walk(i int, fn func(i int, n Node) bool) bool {
	if !fn(i, t.nodes[i]) {
		return false
	}
	for _, child := range t.nodes[i].Children {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}
