package printer

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/joshuapare/adtkit/adt/plist"
	"github.com/joshuapare/adtkit/adt/tree"
)

// jsonNode represents a tree position in JSON format.
type jsonNode struct {
	Value       string      `json:"value"`
	Depth       *int        `json:"depth,omitempty"`
	NumChildren *int        `json:"num_children,omitempty"`
	Children    []*jsonNode `json:"children,omitempty"`
}

// jsonList represents a list with metadata in JSON format.
type jsonList struct {
	Length   int      `json:"length"`
	Elements []string `json:"elements"`
}

// printTreeJSON builds the nested document in one preorder Walk.
func (p *Printer[T]) printTreeJSON(w *bytes.Buffer, t *tree.Tree[T], from tree.Position) error {
	var root *jsonNode
	// path[d] is the most recent node seen at depth d.
	var path []*jsonNode

	err := t.Walk(from, func(pos tree.Position, depth int) error {
		elem, err := t.Element(pos)
		if err != nil {
			return err
		}

		node := &jsonNode{Value: p.format(elem)}
		if p.opts.PrintMetadata {
			n, err := t.NumChildren(pos)
			if err != nil {
				return err
			}
			d := depth
			node.Depth = &d
			node.NumChildren = &n
		}

		path = append(path[:depth], node)
		if depth == 0 {
			root = node
		} else {
			parent := path[depth-1]
			parent.Children = append(parent.Children, node)
		}

		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
			return tree.SkipChildren
		}
		return nil
	})
	if err != nil {
		return err
	}

	return writeJSON(w, root)
}

// printListJSON prints the elements as a JSON array, or as an object with
// the length when metadata is requested.
func (p *Printer[T]) printListJSON(w *bytes.Buffer, n int, seq iter.Seq[*plist.Position[T]]) error {
	elems := make([]string, 0, n)
	for pos := range seq {
		elems = append(elems, p.format(pos.Element()))
	}

	if p.opts.PrintMetadata {
		return writeJSON(w, jsonList{Length: n, Elements: elems})
	}
	return writeJSON(w, elems)
}

func writeJSON(w *bytes.Buffer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	w.Write(data)
	return w.WriteByte('\n')
}
