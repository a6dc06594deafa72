package tree

import (
	"io"
	"log/slog"

	"github.com/joshuapare/adtkit/adt/alloc"
	"github.com/joshuapare/adtkit/adt/slots"
)

const (
	// DefaultChildCapacity is the initial child-array capacity of a new position.
	DefaultChildCapacity = slots.DefaultInitialCapacity

	// DefaultGrowLoadFactor triggers doubling of a child array before an insert.
	DefaultGrowLoadFactor = slots.DefaultGrowAt

	// DefaultShrinkLoadFactor allows halving of a child array.
	DefaultShrinkLoadFactor = slots.DefaultShrinkAt
)

// Options controls tree storage behavior.
type Options struct {
	// ChildCapacity is the initial child-array capacity of every position.
	// Default: 5
	ChildCapacity int

	// GrowLoadFactor is checked before each child insertion; at or above it
	// the parent's child array doubles.
	// Default: 0.8
	GrowLoadFactor float64

	// ShrinkLoadFactor is the threshold for halving a child array.
	// Default: 0.2
	ShrinkLoadFactor float64

	// AutoShrink runs the shrink check on the parent after every UnlinkChild
	// and Delete. When false, shrinking only happens through ShrinkChildren.
	// Default: false
	AutoShrink bool

	// MaxChildren caps the child-array capacity of any position (0 = unlimited).
	// Default: 0
	MaxChildren int

	// MaxPositions caps the number of positions the tree may own (0 = unlimited).
	// Default: 0
	MaxPositions int

	// Logger receives Debug events for child-array growth, shrink and
	// subtree deletion. Nil discards.
	// Default: nil
	Logger *slog.Logger
}

// DefaultOptions returns the standard tree configuration.
func DefaultOptions() Options {
	return Options{
		ChildCapacity:    DefaultChildCapacity,
		GrowLoadFactor:   DefaultGrowLoadFactor,
		ShrinkLoadFactor: DefaultShrinkLoadFactor,
		AutoShrink:       false,
		MaxChildren:      0,
		MaxPositions:     0,
		Logger:           nil,
	}
}

func (o Options) policy() slots.Policy {
	return slots.Policy{
		InitialCapacity: o.ChildCapacity,
		GrowAt:          o.GrowLoadFactor,
		ShrinkAt:        o.ShrinkLoadFactor,
		MaxCapacity:     o.MaxChildren,
	}
}

func (o Options) arena() alloc.ArenaOptions {
	opts := alloc.DefaultArenaOptions()
	opts.Limit = o.MaxPositions
	return opts
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
