package printer

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/joshuapare/adtkit/adt/plist"
	"github.com/joshuapare/adtkit/adt/tree"
)

// printTreeText prints one position per line, indented by depth.
func (p *Printer[T]) printTreeText(w *bytes.Buffer, t *tree.Tree[T], from tree.Position) error {
	return t.Walk(from, func(pos tree.Position, depth int) error {
		elem, err := t.Element(pos)
		if err != nil {
			return err
		}

		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		fmt.Fprintf(w, "%s%s", indent, p.format(elem))

		if p.opts.PrintMetadata {
			n, err := t.NumChildren(pos)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " [children: %d]", n)
		}
		w.WriteByte('\n')

		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
			return tree.SkipChildren
		}
		return nil
	})
}

// printListText prints one element per line.
func (p *Printer[T]) printListText(w *bytes.Buffer, n int, seq iter.Seq[*plist.Position[T]]) error {
	if p.opts.PrintMetadata {
		fmt.Fprintf(w, "List (%d elements)\n", n)
	}
	for pos := range seq {
		w.WriteString(p.format(pos.Element()))
		w.WriteByte('\n')
	}
	return nil
}
