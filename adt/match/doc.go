// Package match provides equality functions for searching ADT elements.
//
// A Func reports whether two elements are equal. The positional list's
// Search takes one, so the same scan serves every element type:
//
//	p, err := l.Search("precious", match.EqualFold)
//	p, err := prices.Search(9.99, match.Within(0.005))
//	p, err := people.Search(person{ID: 7}, match.By(func(p person) int { return p.ID }))
//
// EqualFold compares with full Unicode case folding (golang.org/x/text/cases),
// so "Straße" and "STRASSE" are equal.
package match
