// Package render turns scanned entries into output: a packed grid of
// names, a long listing with permissions, size and date columns, a
// recursive tree, or JSON.
//
// Renderers consume entries and a classifier; they never scan on their
// own except through the TreeSource handed to Tree.
package render
