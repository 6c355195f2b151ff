// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all cclisp values.
package cell

// I (cell) is the basic unit of storage in cclisp. Atoms, forms, procedures
// and failure values are all cells.
type I interface {
	Equal(c I) bool
	Name() string
}
