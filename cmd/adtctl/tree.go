package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/adt/printer"
	"github.com/joshuapare/adtkit/adt/tree"
	"github.com/joshuapare/adtkit/cmd/adtctl/logger"
)

var (
	treeDepth      int
	treeMetadata   bool
	treeDelete     []string
	treeUnlink     []string
	treeShrink     bool
	treeAutoShrink bool
	treeCapacity   int
)

// defaultFamily is used when no edges are given.
var defaultFamily = []string{
	"Esther/Tumelo", "Esther/Julia", "Esther/Teboho", "Esther/Pheello",
	"Julia/Karabo", "Julia/Amahle",
}

var errBadEdge = errors.New("edge must be parent/child")

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth to print (0 = unlimited)")
	cmd.Flags().BoolVar(&treeMetadata, "metadata", false, "Show child counts")
	cmd.Flags().StringSliceVar(&treeDelete, "delete", nil, "Delete the named positions and their subtrees")
	cmd.Flags().StringSliceVar(&treeUnlink, "unlink", nil, "Unlink the named positions from their parents")
	cmd.Flags().BoolVar(&treeShrink, "shrink", false, "Shrink every child array that is sparse enough")
	cmd.Flags().BoolVar(&treeAutoShrink, "auto-shrink", false, "Shrink parents automatically after unlink and delete")
	cmd.Flags().IntVar(&treeCapacity, "capacity", tree.DefaultChildCapacity, "Initial child-array capacity")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [parent/child ...]",
		Short: "Build a general tree and display it",
		Long: `The tree command builds a general tree from parent/child edges and
displays it. The parent of the first edge becomes the root; every other
parent must already be in the tree. Without edges, a sample family tree
is used.

Example:
  adtctl tree
  adtctl tree Esther/Tumelo Esther/Julia Julia/Karabo
  adtctl tree --delete Julia --metadata
  adtctl tree --unlink Teboho --shrink --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

// familyTree is a named tree built from edges.
type familyTree struct {
	t      *tree.Tree[string]
	byName map[string]tree.Position
}

func buildTree(edges []string, opts tree.Options) (*familyTree, error) {
	ft := &familyTree{t: tree.New[string](opts), byName: make(map[string]tree.Position)}

	for _, edge := range edges {
		parent, child, ok := strings.Cut(edge, "/")
		if !ok || parent == "" || child == "" || parent == child {
			return nil, fmt.Errorf("%w: %q", errBadEdge, edge)
		}
		if _, dup := ft.byName[child]; dup {
			return nil, fmt.Errorf("duplicate name %q in edge %q", child, edge)
		}

		if ft.t.IsEmpty() {
			root, err := ft.t.AddRoot(parent)
			if err != nil {
				return nil, err
			}
			ft.byName[parent] = root
		}

		pp, ok := ft.byName[parent]
		if !ok {
			return nil, fmt.Errorf("unknown parent %q in edge %q", parent, edge)
		}
		cp, err := ft.t.AddChild(pp, child)
		if err != nil {
			return nil, fmt.Errorf("add %q under %q: %w", child, parent, err)
		}
		ft.byName[child] = cp
	}
	return ft, nil
}

func (ft *familyTree) lookup(name string) (tree.Position, error) {
	p, ok := ft.byName[name]
	if !ok || !ft.t.Contains(p) {
		return tree.Position{}, fmt.Errorf("%w: %q", tree.ErrNotInTree, name)
	}
	return p, nil
}

func runTree(args []string) error {
	edges := args
	if len(edges) == 0 {
		edges = defaultFamily
		printVerbose("Using the sample family tree\n")
	}

	opts := tree.DefaultOptions()
	opts.ChildCapacity = treeCapacity
	opts.AutoShrink = treeAutoShrink
	opts.Logger = logger.L

	ft, err := buildTree(edges, opts)
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}
	logger.Debug("tree built", "size", ft.t.Size())

	for _, name := range treeUnlink {
		if err := ft.unlink(name); err != nil {
			return err
		}
	}
	for _, name := range treeDelete {
		if err := ft.delete(name); err != nil {
			return err
		}
	}
	if treeShrink {
		ft.shrinkAll()
	}

	root, ok := ft.t.Root()
	if !ok {
		printInfo("%s 0\n", label("Tree Size"))
		return nil
	}

	if !jsonOut {
		rootName, _ := ft.t.Element(root)
		n, _ := ft.t.NumChildren(root)
		printInfo("%s %d\n", label("Tree Size"), ft.t.Size())
		printInfo("%s %s\n", label("Root"), rootName)
		printInfo("%s %d\n", label("No children"), n)
	}
	if quiet {
		return nil
	}

	popts, err := printerOptions()
	if err != nil {
		return err
	}
	popts.MaxDepth = treeDepth
	popts.PrintMetadata = treeMetadata

	p := printer.New[string](os.Stdout, nil, popts)
	if err := p.PrintTree(ft.t, root); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}

func (ft *familyTree) unlink(name string) error {
	pos, err := ft.lookup(name)
	if err != nil {
		return fmt.Errorf("unlink: %w", err)
	}
	parent, err := ft.t.Parent(pos)
	if err != nil {
		return fmt.Errorf("unlink %q: %w", name, err)
	}
	if parent.IsZero() {
		return fmt.Errorf("unlink %q: %w: root has no parent", name, tree.ErrInvalidPosition)
	}

	before := ft.t.Size()
	if _, err := ft.t.UnlinkChild(parent, pos); err != nil {
		return fmt.Errorf("unlink %q: %w", name, err)
	}
	printVerbose("Unlinked %s (%d positions detached)\n", name, before-ft.t.Size())
	return nil
}

func (ft *familyTree) delete(name string) error {
	pos, err := ft.lookup(name)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	n, err := ft.t.Delete(pos)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	printVerbose("Deleted %s (%d positions)\n", name, n)
	return nil
}

// shrinkAll runs the shrink check on every attached position.
func (ft *familyTree) shrinkAll() {
	shrunk := 0
	for p := range ft.t.All() {
		ok, err := ft.t.ShrinkChildren(p)
		if err != nil {
			logger.Warn("shrink failed", "pos", p.String(), "error", err)
			continue
		}
		if ok {
			shrunk++
		}
	}
	printVerbose("%s\n", mutedStyle.Render(fmt.Sprintf("Shrank %d child arrays", shrunk)))
}
