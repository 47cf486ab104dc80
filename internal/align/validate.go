package align

import (
	"fmt"

	"scenesync/internal/timeline"
)

// Quality is the aggregate verdict on an alignment run.
type Quality string

const (
	QualityGood        Quality = "good"
	QualityAcceptable  Quality = "acceptable"
	QualityNeedsReview Quality = "needs_review"
	QualityFailed      Quality = "failed"
)

// ValidateOptions tunes the diagnostic thresholds.
type ValidateOptions struct {
	// OverlapSlack is how far one scene's end may exceed the next scene's
	// start before counting as an overlap. Word timestamps jitter by a few
	// hundredths of a second.
	OverlapSlack float64
	// LargeGapSeconds flags adjacent scenes separated by more than this.
	LargeGapSeconds float64
	// LowScoreThreshold counts fuzzy matches below this similarity.
	LowScoreThreshold float64
}

// DefaultValidateOptions returns the production diagnostic thresholds.
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{
		OverlapSlack:      0.05,
		LargeGapSeconds:   3.0,
		LowScoreThreshold: 0.7,
	}
}

// Report summarizes alignment quality. It is purely diagnostic; nothing
// downstream branches on it except operator tooling.
type Report struct {
	TotalScenes   int      `json:"total_scenes"`
	FuzzyMatched  int      `json:"aligned_fuzzy"`
	Interpolated  int      `json:"aligned_interpolated"`
	NoNarration   int      `json:"no_narration"`
	Unresolved    int      `json:"unresolved"`
	AverageScore  float64  `json:"avg_alignment_score"`
	LowScoreCount int      `json:"low_confidence_count"`
	TotalDuration float64  `json:"total_duration"`
	Overlaps      int      `json:"overlaps"`
	LargeGaps     int      `json:"large_gaps"`
	Issues        []string `json:"issues,omitempty"`
	Quality       Quality  `json:"quality"`
}

// Validate scans aligned scenes for overlaps, large gaps, and score
// distribution problems. The input is not mutated.
func Validate(scenes []timeline.AlignedScene, opts ValidateOptions) Report {
	report := Report{TotalScenes: len(scenes)}

	var scoreSum float64
	for _, s := range scenes {
		switch s.Method {
		case timeline.MethodFuzzyMatch:
			report.FuzzyMatched++
			scoreSum += s.Score
			if s.Score < opts.LowScoreThreshold {
				report.LowScoreCount++
			}
		case timeline.MethodInterpolated:
			report.Interpolated++
		case timeline.MethodNoNarration:
			report.NoNarration++
		case timeline.MethodUnresolved:
			report.Unresolved++
		}
	}
	if report.FuzzyMatched > 0 {
		report.AverageScore = round4(scoreSum / float64(report.FuzzyMatched))
	}

	for i := 0; i+1 < len(scenes); i++ {
		cur, next := scenes[i], scenes[i+1]
		if !cur.Resolved() || !next.Resolved() {
			continue
		}
		if cur.End > next.Start+opts.OverlapSlack {
			report.Overlaps++
			report.Issues = append(report.Issues, fmt.Sprintf(
				"scene %d overlaps scene %d: %.2f > %.2f",
				cur.Number, next.Number, cur.End, next.Start))
		}
		if gap := next.Start - cur.End; gap > opts.LargeGapSeconds {
			report.LargeGaps++
			report.Issues = append(report.Issues, fmt.Sprintf(
				"gap of %.1fs between scene %d and scene %d",
				gap, cur.Number, next.Number))
		}
	}

	for i := len(scenes) - 1; i >= 0; i-- {
		if scenes[i].Resolved() {
			report.TotalDuration = round4(scenes[i].End)
			break
		}
	}

	report.Quality = assessQuality(report)
	return report
}

// assessQuality collapses the statistics into one verdict. An alignment
// where nothing fuzzy-matched is a failure even if interpolation papered
// over every scene, since no window is anchored to real audio.
func assessQuality(r Report) Quality {
	active := r.TotalScenes - r.NoNarration
	issueCount := len(r.Issues) + r.Unresolved
	switch {
	case active > 0 && r.FuzzyMatched == 0:
		return QualityFailed
	case active > 0 && float64(r.FuzzyMatched) < float64(active)*0.3:
		return QualityNeedsReview
	case issueCount >= 5:
		return QualityNeedsReview
	case issueCount > 0 || r.LowScoreCount >= 5:
		return QualityAcceptable
	default:
		return QualityGood
	}
}
