package printer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/joshuapare/adtkit/adt/plist"
	"github.com/joshuapare/adtkit/adt/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// ErrUnknownFormat is returned for a Format other than text or json.
var ErrUnknownFormat = errors.New("printer: unknown format")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one element per line, tree levels indented.
	FormatText Format = "text"

	// FormatJSON outputs JSON, one document per Print call.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per tree level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep below the starting position a tree is
	// printed (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// PrintMetadata adds child counts to tree output and the length to
	// list output.
	// Default: false
	PrintMetadata bool

	// Encoding transcodes the output from UTF-8. Runes the encoding cannot
	// represent are replaced. nil writes UTF-8 unchanged.
	// Default: nil
	Encoding encoding.Encoding
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		PrintMetadata: false,
	}
}

// Printer writes trees and lists of T using a caller-supplied formatter.
type Printer[T any] struct {
	opts   Options
	writer io.Writer
	format func(T) string
}

// New creates a new Printer.
//
// format renders one element; nil uses Sprint. Options controls layout.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.Verb[float64]("%.2f"), printer.DefaultOptions())
//	p.PrintList(prices)
func New[T any](w io.Writer, format func(T) string, opts Options) *Printer[T] {
	if format == nil {
		format = Sprint[T]
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize < 0 {
		opts.IndentSize = 0
	}
	return &Printer[T]{
		opts:   opts,
		writer: w,
		format: format,
	}
}

// Sprint formats v with fmt.Sprint.
func Sprint[T any](v T) string {
	return fmt.Sprint(v)
}

// Verb returns a formatter that renders with a single fmt verb, such as
// "%d" or "%.2f".
func Verb[T any](verb string) func(T) string {
	return func(v T) string {
		return fmt.Sprintf(verb, v)
	}
}

// PrintTree prints the subtree rooted at from.
//
// Example:
//
//	opts := printer.DefaultOptions()
//	opts.MaxDepth = 1
//	printer.New[string](os.Stdout, nil, opts).PrintTree(fam, root)
func (p *Printer[T]) PrintTree(t *tree.Tree[T], from tree.Position) error {
	err := p.emit(func(w *bytes.Buffer) error {
		switch p.opts.Format {
		case FormatJSON:
			return p.printTreeJSON(w, t, from)
		case FormatText:
			return p.printTreeText(w, t, from)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, p.opts.Format)
		}
	})
	if err != nil {
		return fmt.Errorf("print tree: %w", err)
	}
	return nil
}

// PrintChildren prints pos followed by its direct children.
func (p *Printer[T]) PrintChildren(t *tree.Tree[T], pos tree.Position) error {
	saved := p.opts.MaxDepth
	p.opts.MaxDepth = 1
	defer func() { p.opts.MaxDepth = saved }()
	return p.PrintTree(t, pos)
}

// PrintList prints the elements of l front to back.
func (p *Printer[T]) PrintList(l *plist.List[T]) error {
	return p.printList(l, false)
}

// PrintListReverse prints the elements of l back to front.
func (p *Printer[T]) PrintListReverse(l *plist.List[T]) error {
	return p.printList(l, true)
}

func (p *Printer[T]) printList(l *plist.List[T], reverse bool) error {
	if l == nil {
		return fmt.Errorf("print list: %w", plist.ErrNullInput)
	}

	seq := l.All()
	if reverse {
		seq = l.Backward()
	}

	err := p.emit(func(w *bytes.Buffer) error {
		switch p.opts.Format {
		case FormatJSON:
			return p.printListJSON(w, l.Len(), seq)
		case FormatText:
			return p.printListText(w, l.Len(), seq)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, p.opts.Format)
		}
	})
	if err != nil {
		return fmt.Errorf("print list: %w", err)
	}
	return nil
}

// emit renders fn into a buffer and, only if it succeeds, writes the
// result, transcoding it when an Encoding is set.
func (p *Printer[T]) emit(fn func(w *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if p.opts.Encoding == nil {
		_, err := p.writer.Write(buf.Bytes())
		return err
	}

	tw := transform.NewWriter(p.writer, encoding.ReplaceUnsupported(p.opts.Encoding.NewEncoder()))
	if _, err := tw.Write(buf.Bytes()); err != nil {
		return err
	}
	return tw.Close()
}
