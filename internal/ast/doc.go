// Package ast defines the syntax tree for CSS-family stylesheets as produced
// by internal/parser and consumed by internal/format.
//
// Nodes are plain pointer structs that are never mutated after parsing.
// Closed unions (preludes, keyframe selectors, namespace URIs, ...) are sealed
// interfaces: the marker methods are unexported, so every variant lives in
// this package and consumers can switch over a known set.
//
// Field order mirrors source order; formatters visit fields in declaration
// order.
package ast
