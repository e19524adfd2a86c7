// Package encoder serializes a built tree as pretty-printed JSON.
//
// The output is a top-level array of node objects. Each object has
// the keys level, tag, pointer, data, and children; children nests
// recursively. String fields serialize as empty strings when absent,
// never null, and children is always an array. The synthetic root is
// not part of the output, only its descendants are.
package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/robin-pham/gedcom-2-json/tree"
)

// indent is the indentation unit for pretty-printed output.
const indent = "  "

type nodeObject struct {
	Level    int           `json:"level"`
	Tag      string        `json:"tag"`
	Pointer  string        `json:"pointer"`
	Data     string        `json:"data"`
	Children []*nodeObject `json:"children"`
}

// Encode writes the tree's top-level forest to w as indented JSON
// followed by a newline. Sibling order and nesting mirror the built
// tree exactly; encoding the same tree twice produces identical
// bytes.
func Encode(w io.Writer, t *tree.Tree) error {
	if t == nil {
		return fmt.Errorf("tree is nil")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(forest(t)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}

// Marshal returns the indented JSON for the tree's top-level forest.
func Marshal(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func forest(t *tree.Tree) []*nodeObject {
	return objects(t, t.Roots())
}

func objects(t *tree.Tree, indices []int) []*nodeObject {
	out := make([]*nodeObject, 0, len(indices))
	for _, i := range indices {
		n := t.Node(i)
		out = append(out, &nodeObject{
			Level:    n.Level,
			Tag:      n.Tag,
			Pointer:  n.Pointer,
			Data:     n.Data,
			Children: objects(t, n.Children),
		})
	}
	return out
}
