// Package decoder ties line tokenization and tree building into a
// single decode step.
//
// Decode reads GEDCOM text and returns the reconstructed tree. The
// pipeline is single-pass and synchronous: all lines are tokenized,
// then the tree is built, then the result is returned. Each call uses
// entirely independent state, so concurrent callers may decode
// different inputs without coordination.
package decoder

import (
	"io"

	"github.com/robin-pham/gedcom-2-json/parser"
	"github.com/robin-pham/gedcom-2-json/tree"
)

// Decode reads GEDCOM text from r with default options and returns
// the built tree.
func Decode(r io.Reader) (*tree.Tree, error) {
	return DecodeWithOptions(r, DefaultOptions())
}

// DecodeWithOptions reads GEDCOM text from r and returns the built
// tree. The only failure paths are reading the input and level
// tokenization; tree building always succeeds.
func DecodeWithOptions(r io.Reader, opts *DecodeOptions) (*tree.Tree, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	p := parser.NewParser()
	p.SetStrict(opts.StrictMode)
	p.SetMaxNestingDepth(opts.MaxNestingDepth)

	records, err := p.Parse(r)
	if err != nil {
		return nil, err
	}

	return tree.Build(records), nil
}
