package align

import (
	"scenesync/internal/timeline"
)

// Interpolate fills unresolved scenes by splitting the interval between
// their nearest resolved neighbors into equal segments, one per scene in
// the run. audioEnd is the end timestamp of the last transcribed word.
//
// Boundary runs are clamped rather than guessed: a leading run anchors at
// 0.0, a trailing run anchors at audioEnd. A trailing run with no usable
// audio extent (audioEnd at or before the predecessor's end) stays
// unresolved and surfaces through Validate.
//
// The input slice is not mutated.
func Interpolate(scenes []timeline.AlignedScene, audioEnd float64) []timeline.AlignedScene {
	out := make([]timeline.AlignedScene, len(scenes))
	copy(out, scenes)

	for i := 0; i < len(out); i++ {
		if out[i].Method != timeline.MethodUnresolved {
			continue
		}

		// Maximal run of consecutive unresolved scenes starting at i.
		runEnd := i
		for runEnd+1 < len(out) && out[runEnd+1].Method == timeline.MethodUnresolved {
			runEnd++
		}
		count := runEnd - i + 1

		prevEnd := 0.0
		for j := i - 1; j >= 0; j-- {
			if out[j].Resolved() {
				prevEnd = out[j].End
				break
			}
		}

		nextStart := audioEnd
		haveNext := false
		for j := runEnd + 1; j < len(out); j++ {
			if out[j].Resolved() {
				nextStart = out[j].Start
				haveNext = true
				break
			}
		}
		if !haveNext && nextStart <= prevEnd {
			// Trailing run with no audio extent to anchor against.
			i = runEnd
			continue
		}

		segment := (nextStart - prevEnd) / float64(count)
		for j := 0; j < count; j++ {
			scene := &out[i+j]
			scene.Method = timeline.MethodInterpolated
			scene.Start = round4(prevEnd + float64(j)*segment)
			scene.End = round4(prevEnd + float64(j+1)*segment)
			scene.Score = 0
		}
		i = runEnd
	}
	return out
}

// AudioEnd returns the end timestamp of the final word, or 0 for an empty
// transcript.
func AudioEnd(words []timeline.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	return words[len(words)-1].End
}
