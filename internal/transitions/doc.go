// Package transitions picks the transition between each pair of adjacent
// scenes from their narrative-act and visual-style relationship.
package transitions
