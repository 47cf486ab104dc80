// Package testsupport provides fixture builders shared across pipeline
// tests. It depends only on internal/timeline so in-package tests of any
// stage can import it without creating a cycle through internal/config.
package testsupport

import (
	"strings"
	"testing"

	"scenesync/internal/timeline"
)

// WordsFromScript splits a script into words and assigns evenly spaced
// timestamps: word i spans [start + i*per, start + i*per + per*0.8]. The
// gap between words mimics the small inter-word silences a real
// transcriber reports.
func WordsFromScript(t testing.TB, script string, start, per float64) []timeline.Word {
	t.Helper()

	fields := strings.Fields(script)
	words := make([]timeline.Word, 0, len(fields))
	for i, field := range fields {
		wordStart := start + float64(i)*per
		words = append(words, timeline.Word{
			Text:  field,
			Start: wordStart,
			End:   wordStart + per*0.8,
		})
	}
	return words
}

// Aligned builds a resolved fuzzy-match scene for timing tests.
func Aligned(number int, start, end float64) timeline.AlignedScene {
	return timeline.AlignedScene{
		Scene:  timeline.Scene{Number: number},
		Method: timeline.MethodFuzzyMatch,
		Start:  start,
		End:    end,
		Score:  0.9,
	}
}
