package yamldoc

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/robin-pham/gedcom-2-json/decoder"
	"github.com/robin-pham/gedcom-2-json/tree"
)

func TestWrite(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n1 @SUB1@ SUBM\n"

	built, err := decoder.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	data, err := Marshal(built)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var forest []*nodeDoc
	if err := yaml.Unmarshal(data, &forest); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(forest) != 1 {
		t.Fatalf("forest = %d nodes, want 1", len(forest))
	}
	head := forest[0]
	if head.Tag != "HEAD" || head.Level != 0 {
		t.Fatalf("top node = %+v, want level 0 HEAD", head)
	}
	if len(head.Children) != 2 {
		t.Fatalf("HEAD children = %d, want 2", len(head.Children))
	}
	gedc := head.Children[0]
	if gedc.Tag != "GEDC" || len(gedc.Children) != 1 || gedc.Children[0].Data != "5.5" {
		t.Fatalf("GEDC subtree = %+v, want VERS 5.5 child", gedc)
	}
	if subm := head.Children[1]; subm.Pointer != "@SUB1@" {
		t.Fatalf("SUBM pointer = %q, want @SUB1@", subm.Pointer)
	}
}

func TestWriteEmptyForest(t *testing.T) {
	data, err := Marshal(tree.Build(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Fatalf("Marshal() = %q, want empty sequence", got)
	}
}

func TestWriteDeterministic(t *testing.T) {
	built, err := decoder.Decode(strings.NewReader("0 HEAD\n1 SEX M\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	first, err := Marshal(built)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := Marshal(built)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("Marshal() output differs between calls")
	}
}

func TestWriteNilTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err == nil {
		t.Fatal("Write() expected error for nil tree")
	}
}
