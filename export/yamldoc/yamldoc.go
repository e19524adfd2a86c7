// Package yamldoc renders a built tree as a YAML document, as an
// alternative to the canonical JSON output. The node shape matches
// the JSON encoder: level, tag, pointer, data, children.
package yamldoc

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robin-pham/gedcom-2-json/tree"
)

type nodeDoc struct {
	Level    int        `yaml:"level"`
	Tag      string     `yaml:"tag"`
	Pointer  string     `yaml:"pointer"`
	Data     string     `yaml:"data"`
	Children []*nodeDoc `yaml:"children"`
}

// Write renders the tree's top-level forest to w as YAML. Sibling
// order and nesting mirror the built tree exactly.
func Write(w io.Writer, t *tree.Tree) error {
	if t == nil {
		return fmt.Errorf("tree is nil")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(forest(t)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush encoder: %w", err)
	}
	return nil
}

// Marshal returns the YAML for the tree's top-level forest.
func Marshal(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func forest(t *tree.Tree) []*nodeDoc {
	return docs(t, t.Roots())
}

func docs(t *tree.Tree, indices []int) []*nodeDoc {
	out := make([]*nodeDoc, 0, len(indices))
	for _, i := range indices {
		n := t.Node(i)
		out = append(out, &nodeDoc{
			Level:    n.Level,
			Tag:      n.Tag,
			Pointer:  n.Pointer,
			Data:     n.Data,
			Children: docs(t, n.Children),
		})
	}
	return out
}
