// Package pagination provides sorting and limiting for CLI list output.
//
// It is used by the batch command to order assessed profiles by name or
// by any footprint category, and to cap how many rows are printed.
package pagination
