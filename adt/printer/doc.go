// Package printer renders trees and positional lists as text or JSON.
//
// A Printer is parameterized by the element type and a formatter, so one
// implementation covers strings, integers, floats and structs alike:
//
//	p := printer.New[string](os.Stdout, nil, printer.DefaultOptions())
//	p.PrintTree(fam, root)
//
//	Esther
//	  Tumelo
//	  Julia
//	    Karabo
//	    Amahle
//
// Output is buffered per call and written only if the whole call succeeds.
// Set Options.Encoding (see Charset) to transcode for legacy terminals.
package printer
