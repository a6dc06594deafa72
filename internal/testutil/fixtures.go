package testutil

import (
	"testing"

	"github.com/joshuapare/adtkit/adt/plist"
	"github.com/joshuapare/adtkit/adt/tree"
)

// FamilyNames lists the family tree in preorder.
var FamilyNames = []string{"Esther", "Tumelo", "Julia", "Karabo", "Amahle", "Teboho", "Pheello"}

// PlaylistNames lists the playlist front to back.
var PlaylistNames = []string{"Pheello", "Mish", "Precious"}

// Family holds the family tree and the positions of its members.
//
//	Esther
//	  Tumelo
//	  Julia
//	    Karabo
//	    Amahle
//	  Teboho
//	  Pheello
type Family struct {
	Tree  *tree.Tree[string]
	Root  tree.Position
	Julia tree.Position
	// ByName maps every member to its position.
	ByName map[string]tree.Position
}

// NewFamily builds the family tree with default options.
//
// Example:
//
//	f := testutil.NewFamily(t)
//	n, _ := f.Tree.NumChildren(f.Root) // 4
func NewFamily(t testing.TB) *Family {
	t.Helper()
	return NewFamilyWith(t, tree.DefaultOptions())
}

// NewFamilyWith builds the family tree with opts.
func NewFamilyWith(t testing.TB, opts tree.Options) *Family {
	t.Helper()
	f, err := BuildFamily(opts)
	if err != nil {
		t.Fatalf("build family tree: %v", err)
	}
	return f
}

// BuildFamily builds the family tree without a testing.TB, for benchmarks
// setup and example programs.
func BuildFamily(opts tree.Options) (*Family, error) {
	tr := tree.New[string](opts)
	f := &Family{Tree: tr, ByName: make(map[string]tree.Position)}

	root, err := tr.AddRoot("Esther")
	if err != nil {
		return nil, err
	}
	f.Root = root
	f.ByName["Esther"] = root

	edges := []struct{ parent, child string }{
		{"Esther", "Tumelo"},
		{"Esther", "Julia"},
		{"Esther", "Teboho"},
		{"Esther", "Pheello"},
		{"Julia", "Karabo"},
		{"Julia", "Amahle"},
	}
	for _, e := range edges {
		p, err := tr.AddChild(f.ByName[e.parent], e.child)
		if err != nil {
			return nil, err
		}
		f.ByName[e.child] = p
	}
	f.Julia = f.ByName["Julia"]
	return f, nil
}

// NewPlaylist builds Pheello, Mish, Precious with AddFirst, AddAfter and
// AddLast.
func NewPlaylist(t testing.TB) *plist.List[string] {
	t.Helper()
	l := plist.New[string]()
	first := l.AddFirst("Pheello")
	if _, err := l.AddAfter(first, "Mish"); err != nil {
		t.Fatalf("build playlist: %v", err)
	}
	l.AddLast("Precious")
	return l
}
