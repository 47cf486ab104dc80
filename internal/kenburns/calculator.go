package kenburns

import (
	"math"
	"strings"

	"scenesync/internal/timeline"
)

// Options tunes camera-motion speed.
type Options struct {
	// BaseDuration is the display duration (seconds) the 1.0x motion
	// speed is calibrated for.
	BaseDuration float64
	// MinDisplay clamps very short scenes when computing the speed
	// multiplier, so the motion never appears to race.
	MinDisplay float64
}

// DefaultOptions returns the production camera-motion tuning.
func DefaultOptions() Options {
	return Options{
		BaseDuration: 11.0,
		MinDisplay:   3.0,
	}
}

// compositionDirections maps composition hints to camera motions.
// Unrecognized hints zoom in, the conservative default for unknown
// framing.
var compositionDirections = map[string]timeline.Direction{
	"wide":          timeline.SlowZoomIn,
	"medium":        timeline.SlowPanRight,
	"closeup":       timeline.SlowZoomOut,
	"environmental": timeline.SlowPanLeft,
	"portrait":      timeline.SlowZoomIn,
	"overhead":      timeline.SlowZoomIn,
	"low_angle":     timeline.SlowTiltUp,
}

// presets holds the start/end geometry for each motion. Scales apply to
// zooms, pixel offsets to pans and tilts.
var presets = map[timeline.Direction]timeline.KenBurns{
	timeline.SlowZoomIn:   {StartScale: 1.0, EndScale: 1.15},
	timeline.SlowZoomOut:  {StartScale: 1.15, EndScale: 1.0},
	timeline.SlowPanRight: {StartXOffset: -40, EndXOffset: 40},
	timeline.SlowPanLeft:  {StartXOffset: 40, EndXOffset: -40},
	timeline.SlowTiltUp:   {StartYOffset: 30, EndYOffset: -30},
}

// Calculate builds the camera-motion profile for one scene. Pan-style
// compositions alternate direction by scene parity (even scenes pan left,
// odd scenes pan right) for visual variety. The speed multiplier scales
// the base motion to the scene's display duration, with short scenes
// clamped to Options.MinDisplay.
func Calculate(composition string, duration float64, sceneIndex int, opts Options) timeline.KenBurns {
	direction, ok := compositionDirections[strings.ToLower(strings.TrimSpace(composition))]
	if !ok {
		direction = timeline.SlowZoomIn
	}

	if sceneIndex%2 == 0 {
		switch direction {
		case timeline.SlowPanRight:
			direction = timeline.SlowPanLeft
		case timeline.SlowPanLeft:
			direction = timeline.SlowPanRight
		}
	}

	effective := math.Max(duration, opts.MinDisplay)
	profile := presets[direction]
	profile.Direction = direction
	profile.SpeedMultiplier = round3(opts.BaseDuration / effective)
	return profile
}

// Assign attaches a camera-motion profile to every scene, falling back to
// a medium composition when the scene carries no hint. Scenes that have
// not been through timing adjustment yet get the base duration, giving
// 1.0x motion. The input slice is not mutated.
func Assign(scenes []timeline.TimedScene, opts Options) []timeline.TimedScene {
	out := make([]timeline.TimedScene, len(scenes))
	copy(out, scenes)
	for i := range out {
		composition := out[i].Composition
		if strings.TrimSpace(composition) == "" {
			composition = "medium"
		}
		duration := out[i].DisplayDuration
		if duration <= 0 {
			duration = opts.BaseDuration
		}
		out[i].KenBurns = Calculate(composition, duration, i, opts)
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
