package transitions

import (
	"scenesync/internal/timeline"
)

// Durations holds the configured transition lengths in seconds.
type Durations struct {
	// Crossfade is the quick cut between same-style, same-act scenes.
	Crossfade float64
	// StyleChange is the longer crossfade when the visual style shifts
	// within an act.
	StyleChange float64
	// ActDip is the dip-to-black between acts.
	ActDip float64
	// TerminalFade is used for the opening fade-from-black and the closing
	// fade-to-black.
	TerminalFade float64
}

// DefaultDurations returns the production transition lengths.
func DefaultDurations() Durations {
	return Durations{
		Crossfade:    0.4,
		StyleChange:  0.8,
		ActDip:       1.5,
		TerminalFade: 1.0,
	}
}

// Determine picks the transition leaving current. Rules in priority order:
// last scene fades to black, an act change dips to black, a style change
// within the act gets the longer crossfade, everything else gets the quick
// crossfade.
func Determine(current timeline.TimedScene, next *timeline.TimedScene, d Durations) timeline.Transition {
	if next == nil {
		return timeline.Transition{Type: timeline.TransitionFadeToBlack, Duration: d.TerminalFade}
	}
	if current.Act != "" && next.Act != "" && current.Act != next.Act {
		return timeline.Transition{Type: timeline.TransitionDipToBlack, Duration: d.ActDip}
	}
	if current.Style != "" && next.Style != "" && current.Style != next.Style {
		return timeline.Transition{Type: timeline.TransitionCrossfade, Duration: d.StyleChange}
	}
	return timeline.Transition{Type: timeline.TransitionCrossfade, Duration: d.Crossfade}
}

// Assign sets transition_in and transition_out on every scene. Each
// scene's transition_in mirrors its predecessor's transition_out; the
// first scene always fades from black. The input slice is not mutated.
func Assign(scenes []timeline.TimedScene, d Durations) []timeline.TimedScene {
	out := make([]timeline.TimedScene, len(scenes))
	copy(out, scenes)
	for i := range out {
		if i == 0 {
			out[i].TransitionIn = timeline.Transition{
				Type:     timeline.TransitionFadeFromBlack,
				Duration: d.TerminalFade,
			}
		} else {
			out[i].TransitionIn = out[i-1].TransitionOut
		}

		var next *timeline.TimedScene
		if i+1 < len(out) {
			next = &out[i+1]
		}
		out[i].TransitionOut = Determine(out[i], next, d)
	}
	return out
}
