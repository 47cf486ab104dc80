// Package align maps scripted scenes onto transcript word spans.
//
// Alignment runs as a left-to-right fold over the word stream: each scene
// searches a bounded window starting at the cursor left by the previous
// successful match, so resolved scenes always land in non-decreasing
// temporal order. Scenes that fail the similarity threshold are tagged
// unresolved and later filled by interpolation between their nearest
// resolved neighbors. Validate reports overlap and gap statistics without
// correcting anything.
package align
