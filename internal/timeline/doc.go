// Package timeline defines the shared data model for the scene timing
// pipeline: transcribed words, scripted scenes, alignment results, and the
// final per-scene display windows handed to the render-config writer.
//
// Every pipeline stage consumes and produces these types without mutating
// its input slice, so intermediate results stay inspectable in tests and
// the sequential stage dependencies remain explicit.
package timeline
