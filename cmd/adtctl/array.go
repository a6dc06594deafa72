package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/adt/alloc"
	"github.com/joshuapare/adtkit/adt/slots"
)

var (
	arrayCount    int
	arrayRemove   int
	arrayCapacity int
	arrayDump     bool
)

func init() {
	cmd := newArrayCmd()
	cmd.Flags().IntVar(&arrayCount, "count", 20, "Number of elements to append")
	cmd.Flags().IntVar(&arrayRemove, "remove", 0, "Number of elements to remove from the front afterwards")
	cmd.Flags().IntVar(&arrayCapacity, "capacity", slots.DefaultInitialCapacity, "Initial capacity")
	cmd.Flags().BoolVar(&arrayDump, "dump", false, "Print the final contents")
	rootCmd.AddCommand(cmd)
}

func newArrayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "array",
		Short: "Trace the growth and shrink policy of a child array",
		Long: `The array command appends integers to a slot array with the same
policy tree positions use for their children, then removes some and
shrinks. Every capacity change is reported with the load factor that
triggered it.

Example:
  adtctl array --count 40
  adtctl array --count 40 --remove 36 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArray()
		},
	}
	return cmd
}

// capacityEvent records one capacity change.
type capacityEvent struct {
	Op         string  `json:"op"`
	Count      int     `json:"count"`
	From       int     `json:"from"`
	To         int     `json:"to"`
	LoadFactor float64 `json:"load_factor"`
}

type arrayTrace struct {
	Events   []capacityEvent `json:"events"`
	Len      int             `json:"len"`
	Cap      int             `json:"cap"`
	Contents []int           `json:"contents,omitempty"`
}

func runArray() error {
	if arrayCount < 0 || arrayRemove < 0 {
		return fmt.Errorf("%w: count and remove must not be negative", alloc.ErrBadSize)
	}

	policy := slots.DefaultPolicy()
	policy.InitialCapacity = arrayCapacity
	arr := slots.New[int](policy)

	var trace arrayTrace
	for i := range arrayCount {
		before, load := arr.Cap(), arr.LoadFactor()
		grew, err := arr.Append(i)
		if err != nil {
			return fmt.Errorf("append %d: %w", i, err)
		}
		if grew {
			trace.Events = append(trace.Events, capacityEvent{
				Op: "grow", Count: arr.Len(), From: before, To: arr.Cap(), LoadFactor: load,
			})
		}
	}

	for range min(arrayRemove, arr.Len()) {
		if _, err := arr.RemoveAt(0); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
	}
	for {
		before, load := arr.Cap(), arr.LoadFactor()
		if !arr.Shrink() {
			break
		}
		trace.Events = append(trace.Events, capacityEvent{
			Op: "shrink", Count: arr.Len(), From: before, To: arr.Cap(), LoadFactor: load,
		})
	}

	trace.Len, trace.Cap = arr.Len(), arr.Cap()
	if arrayDump {
		trace.Contents = arr.View()
	}

	if jsonOut {
		return printJSON(trace)
	}
	if quiet {
		return nil
	}

	printInfo("%s\n", labelStyle.Render(fmt.Sprintf("%-7s %6s %6s %6s %6s", "op", "count", "from", "to", "load")))
	for _, ev := range trace.Events {
		printInfo("%-7s %6d %6d %6d %6.2f\n", ev.Op, ev.Count, ev.From, ev.To, ev.LoadFactor)
	}
	printInfo("%s %d/%d\n", label("Final"), trace.Len, trace.Cap)

	if arrayDump {
		return alloc.Fprint(os.Stdout, trace.Contents, len(trace.Contents), nil)
	}
	return nil
}
