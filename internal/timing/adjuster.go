package timing

import (
	"math"

	"scenesync/internal/timeline"
)

// Policy carries the numeric display-window rules. One value is threaded
// through every stage so the whole pipeline can run under alternate
// policies in tests.
type Policy struct {
	// PreRoll shows each image this long before its narration starts.
	PreRoll float64
	// PostHold keeps each image up this long after its narration ends.
	PostHold float64
	// MinDisplay is the shortest a scene may stay on screen.
	MinDisplay float64
	// MaxDisplay is the longest a scene may stay on screen.
	MaxDisplay float64
}

// DefaultPolicy returns the production display-window rules.
func DefaultPolicy() Policy {
	return Policy{
		PreRoll:    0.3,
		PostHold:   0.5,
		MinDisplay: 3.0,
		MaxDisplay: 18.0,
	}
}

// Adjust runs the full display-window pipeline over aligned scenes.
// Output invariants: every display duration lies in
// [Policy.MinDisplay, Policy.MaxDisplay] and adjacent windows never
// overlap.
func Adjust(scenes []timeline.AlignedScene, policy Policy) []timeline.TimedScene {
	timed := PreRoll(scenes, policy.PreRoll)
	timed = PostHold(timed, policy.PostHold, policy.MinDisplay)
	timed = EnforceMinimum(timed, policy.MinDisplay)
	timed = EnforceMaximum(timed, policy.MaxDisplay)
	timed = ResolveOverlaps(timed, policy.MinDisplay)
	return computeDurations(timed)
}

// PreRoll seeds each scene's display window start at start_time - preRoll,
// clamped to zero. Scenes without a narration window start at zero and are
// repaired by the later passes.
func PreRoll(scenes []timeline.AlignedScene, preRoll float64) []timeline.TimedScene {
	timed := make([]timeline.TimedScene, len(scenes))
	for i, s := range scenes {
		timed[i].AlignedScene = s
		if s.Resolved() {
			timed[i].DisplayStart = math.Max(0, s.Start-preRoll)
		}
	}
	return timed
}

// PostHold extends each scene's display window to end_time + postHold,
// never pushing past the next scene's already-computed display start. The
// last scene keeps the full unclamped hold. Scenes without narration get a
// minimum-length placeholder window.
func PostHold(scenes []timeline.TimedScene, postHold, minDisplay float64) []timeline.TimedScene {
	out := copyScenes(scenes)
	for i := range out {
		if !out[i].Resolved() {
			out[i].DisplayEnd = out[i].DisplayStart + minDisplay
			continue
		}
		end := out[i].End + postHold
		if i+1 < len(out) && end > out[i+1].DisplayStart {
			end = out[i+1].DisplayStart
		}
		out[i].DisplayEnd = end
	}
	return out
}

// EnforceMinimum is a left-to-right pass extending any window shorter than
// minSeconds. An extension can intrude into the next scene's window, so
// the next scene's display start is pushed forward before its own minimum
// check runs.
func EnforceMinimum(scenes []timeline.TimedScene, minSeconds float64) []timeline.TimedScene {
	out := copyScenes(scenes)
	for i := range out {
		if out[i].DisplayEnd-out[i].DisplayStart < minSeconds {
			out[i].DisplayEnd = out[i].DisplayStart + minSeconds
			if i+1 < len(out) && out[i].DisplayEnd > out[i+1].DisplayStart {
				out[i+1].DisplayStart = out[i].DisplayEnd
			}
		}
	}
	return out
}

// EnforceMaximum independently clamps each window to maxSeconds.
func EnforceMaximum(scenes []timeline.TimedScene, maxSeconds float64) []timeline.TimedScene {
	out := copyScenes(scenes)
	for i := range out {
		if out[i].DisplayEnd-out[i].DisplayStart > maxSeconds {
			out[i].DisplayEnd = out[i].DisplayStart + maxSeconds
		}
	}
	return out
}

// ResolveOverlaps is the final left-to-right pass: any scene starting
// before its predecessor ends is pushed to the predecessor's end. A window
// inverted by the push is re-opened to the minimum length.
func ResolveOverlaps(scenes []timeline.TimedScene, minSeconds float64) []timeline.TimedScene {
	out := copyScenes(scenes)
	for i := 1; i < len(out); i++ {
		if out[i].DisplayStart < out[i-1].DisplayEnd {
			out[i].DisplayStart = out[i-1].DisplayEnd
		}
		if out[i].DisplayEnd < out[i].DisplayStart {
			out[i].DisplayEnd = out[i].DisplayStart + minSeconds
		}
	}
	return out
}

func computeDurations(scenes []timeline.TimedScene) []timeline.TimedScene {
	out := copyScenes(scenes)
	for i := range out {
		out[i].DisplayDuration = round4(out[i].DisplayEnd - out[i].DisplayStart)
	}
	return out
}

func copyScenes(scenes []timeline.TimedScene) []timeline.TimedScene {
	out := make([]timeline.TimedScene, len(scenes))
	copy(out, scenes)
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
