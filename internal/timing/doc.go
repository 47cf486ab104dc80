// Package timing converts raw narration windows into final, non-overlapping
// display windows.
//
// Adjust runs a fixed sequence of transforms: pre-roll, post-hold, minimum
// enforcement, maximum clamp, overlap resolution, and duration computation.
// The order is a hard dependency; each stage consumes the windows the
// previous one produced, and overlap resolution must run after minimum
// enforcement or it would undo the propagated extensions. Every stage is
// exported so the passes can be tested in isolation.
package timing
