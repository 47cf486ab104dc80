// Package render assembles the final per-scene timeline into the render
// configuration consumed by the external video compositor, and writes the
// scene-timing debug dump operators use to inspect alignment decisions.
package render
