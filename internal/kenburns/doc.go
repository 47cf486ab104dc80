// Package kenburns assigns a slow pan/zoom/tilt camera motion to each
// scene's still image based on its composition and display duration.
package kenburns
