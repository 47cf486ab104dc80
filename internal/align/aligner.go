package align

import (
	"math"

	"scenesync/internal/textnorm"
	"scenesync/internal/timeline"
)

// Options tunes the fuzzy matcher.
type Options struct {
	// MinMatchRatio is the minimum similarity for accepting a match.
	MinMatchRatio float64
	// SearchWindowMultiplier bounds the search window to this many times
	// the excerpt length.
	SearchWindowMultiplier int
	// MinSearchWindow is the floor on the search window in words, so short
	// excerpts still search a useful stretch of transcript.
	MinSearchWindow int
	// AnchorSize is how many leading excerpt words the anchor fallback
	// matches when the full excerpt fails.
	AnchorSize int
	// AnchorThreshold is the similarity an anchor span must reach before
	// the full excerpt is rescored at that position.
	AnchorThreshold float64
}

// DefaultOptions returns the matcher tuning used in production.
func DefaultOptions() Options {
	return Options{
		MinMatchRatio:          0.6,
		SearchWindowMultiplier: 3,
		MinSearchWindow:        500,
		AnchorSize:             6,
		AnchorThreshold:        0.55,
	}
}

// Align matches each scene's script excerpt to a contiguous span of
// transcript words.
//
// Scenes with empty excerpts become no-narration markers and consume no
// words. For the rest, a window of excerpt-length spans is slid forward
// from the cursor; the best-scoring span wins if it clears
// Options.MinMatchRatio, with a leading-words anchor fallback for spans
// the transcriber rephrased mid-sentence. On failure the scene is tagged
// unresolved and the cursor stays put, so the failed scene's candidate
// words remain available to later scenes.
func Align(scenes []timeline.Scene, words []timeline.Word, opts Options) []timeline.AlignedScene {
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = textnorm.Normalize(w.Text)
	}

	totalWords := len(words)
	wordsPerScene := 0.0
	if len(scenes) > 0 {
		wordsPerScene = float64(totalWords) / float64(len(scenes))
	}

	aligned := make([]timeline.AlignedScene, 0, len(scenes))
	cursor := 0
	for _, scene := range scenes {
		excerpt := textnorm.Tokens(scene.ScriptExcerpt)
		if len(excerpt) == 0 {
			aligned = append(aligned, timeline.AlignedScene{
				Scene:  scene,
				Method: timeline.MethodNoNarration,
			})
			continue
		}

		searchAhead := len(excerpt) * opts.SearchWindowMultiplier
		if proportional := int(wordsPerScene * 2); proportional > searchAhead {
			searchAhead = proportional
		}
		if opts.MinSearchWindow > searchAhead {
			searchAhead = opts.MinSearchWindow
		}
		limit := cursor + searchAhead
		if limit > totalWords {
			limit = totalWords
		}

		bestStart, bestScore := bestWindow(excerpt, normalized, cursor, limit)
		if bestScore < opts.MinMatchRatio {
			if anchorStart, anchorScore := anchorWindow(excerpt, normalized, cursor, limit, opts); anchorScore > bestScore {
				bestStart, bestScore = anchorStart, anchorScore
			}
		}

		if bestScore < opts.MinMatchRatio {
			aligned = append(aligned, timeline.AlignedScene{
				Scene:  scene,
				Method: timeline.MethodUnresolved,
				Score:  round4(bestScore),
			})
			continue
		}

		spanEnd := bestStart + len(excerpt) - 1
		if spanEnd > totalWords-1 {
			spanEnd = totalWords - 1
		}
		aligned = append(aligned, timeline.AlignedScene{
			Scene:  scene,
			Method: timeline.MethodFuzzyMatch,
			Start:  words[bestStart].Start,
			End:    words[spanEnd].End,
			Score:  round4(bestScore),
		})
		cursor = spanEnd + 1
	}
	return aligned
}

// bestWindow slides an excerpt-length window across normalized[from:limit]
// and returns the best-scoring start index.
func bestWindow(excerpt, normalized []string, from, limit int) (int, float64) {
	bestStart := from
	bestScore := 0.0
	for i := from; i < limit; i++ {
		if i+len(excerpt) > len(normalized) {
			break
		}
		score := textnorm.Similarity(excerpt, normalized[i:i+len(excerpt)])
		if score > bestScore {
			bestScore = score
			bestStart = i
		}
	}
	return bestStart, bestScore
}

// anchorWindow matches only the first Options.AnchorSize excerpt words to
// locate a plausible start, then rescores the full excerpt from there.
// This recovers scenes where the transcriber got the opening words right
// but rephrased the middle or end of the sentence.
func anchorWindow(excerpt, normalized []string, from, limit int, opts Options) (int, float64) {
	if len(excerpt) < opts.AnchorSize {
		return from, 0.0
	}
	anchor := excerpt[:opts.AnchorSize]

	bestStart := from
	bestScore := 0.0
	for i := from; i < limit; i++ {
		if i+opts.AnchorSize > len(normalized) {
			break
		}
		if textnorm.Similarity(anchor, normalized[i:i+opts.AnchorSize]) < opts.AnchorThreshold {
			continue
		}
		span := normalized[i:min(i+len(excerpt), len(normalized))]
		// Require at least half the excerpt's words before scoring.
		if len(span) < len(excerpt)/2 {
			continue
		}
		if score := textnorm.Similarity(excerpt, span); score > bestScore {
			bestScore = score
			bestStart = i
		}
	}
	return bestStart, bestScore
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
