package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/adt/match"
	"github.com/joshuapare/adtkit/adt/plist"
	"github.com/joshuapare/adtkit/adt/printer"
)

var (
	listReverse bool
	listFind    string
	listFold    bool
	listDelete  []string
	listPrepend []string
	listAfter   string
)

// defaultPlaylist is used when no elements are given.
var defaultPlaylist = []string{"Pheello", "Mish", "Precious"}

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listReverse, "reverse", false, "Print back to front")
	cmd.Flags().StringVar(&listFind, "find", "", "Search for an element and report its index")
	cmd.Flags().BoolVar(&listFold, "fold", false, "Compare case-insensitively with Unicode case folding")
	cmd.Flags().StringSliceVar(&listDelete, "delete", nil, "Delete the first occurrence of each element")
	cmd.Flags().StringSliceVar(&listPrepend, "prepend", nil, "Insert elements at the front, in order")
	cmd.Flags().StringVar(&listAfter, "after", "", "With --prepend, insert after this element instead of at the front")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [element ...]",
		Short: "Build a positional list and display it",
		Long: `The list command appends its arguments to a positional list, applies
insertions, deletions and searches, and prints the result. Without
arguments, a sample playlist is used.

Example:
  adtctl list Pheello Mish Precious
  adtctl list --reverse
  adtctl list --find precious --fold
  adtctl list --prepend Lerato --after Mish --delete Precious`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

type findResult struct {
	Query string `json:"query"`
	Found bool   `json:"found"`
	Index int    `json:"index"`
	Value string `json:"value,omitempty"`
}

func runList(args []string) error {
	elems := args
	if len(elems) == 0 {
		elems = defaultPlaylist
		printVerbose("Using the sample playlist\n")
	}

	eq := match.Func[string](match.Equal[string])
	if listFold {
		eq = match.EqualFold
	}

	l := plist.New[string]()
	for _, e := range elems {
		l.AddLast(e)
	}

	if err := prepend(l, eq); err != nil {
		return err
	}

	for _, e := range listDelete {
		p, err := l.Search(e, eq)
		if err != nil {
			return fmt.Errorf("delete %q: %w", e, err)
		}
		if _, err := l.Delete(p); err != nil {
			return fmt.Errorf("delete %q: %w", e, err)
		}
		printVerbose("Deleted %s\n", e)
	}

	if listFind != "" {
		return find(l, eq)
	}

	if !jsonOut {
		printInfo("%s %d\n", label("Size"), l.Len())
	}
	if quiet {
		return nil
	}

	popts, err := printerOptions()
	if err != nil {
		return err
	}
	p := printer.New[string](os.Stdout, nil, popts)
	if listReverse {
		return p.PrintListReverse(l)
	}
	return p.PrintList(l)
}

// prepend inserts the --prepend elements at the front, or after the
// --after anchor, keeping their relative order.
func prepend(l *plist.List[string], eq match.Func[string]) error {
	anchor := l.Header()
	if listAfter != "" {
		p, err := l.Search(listAfter, eq)
		if err != nil {
			return fmt.Errorf("anchor %q: %w", listAfter, err)
		}
		anchor = p
	}

	for _, e := range listPrepend {
		p, err := l.AddAfter(anchor, e)
		if err != nil {
			return fmt.Errorf("insert %q: %w", e, err)
		}
		anchor = p
	}
	return nil
}

func find(l *plist.List[string], eq match.Func[string]) error {
	res := findResult{Query: listFind, Index: -1}

	p, err := l.Search(listFind, eq)
	switch {
	case errors.Is(err, plist.ErrNotFound):
	case err != nil:
		return err
	default:
		res.Found = true
		res.Value = p.Element()
		for q := range l.All() {
			res.Index++
			if q == p {
				break
			}
		}
	}

	notFound := fmt.Errorf("find %q: %w", listFind, plist.ErrNotFound)
	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
		if !res.Found {
			return notFound
		}
		return nil
	}
	if !res.Found {
		printInfo("%s\n", warnStyle.Render(fmt.Sprintf("Not found: %s", listFind)))
		return notFound
	}
	printInfo("%s %s (index %d)\n", label("Found"), res.Value, res.Index)
	return nil
}
