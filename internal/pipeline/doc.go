// Package pipeline chains the alignment, timing, transition, and camera
// motion stages into one pure run over a video's scenes and transcript.
// Stage order is fixed; each stage consumes the previous stage's output
// and no stage performs I/O.
package pipeline
