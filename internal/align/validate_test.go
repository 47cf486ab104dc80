package align

import (
	"testing"

	"scenesync/internal/timeline"
)

func TestValidateCleanAlignmentIsGood(t *testing.T) {
	scenes := []timeline.AlignedScene{
		fuzzy(1, 0.0, 5.0),
		fuzzy(2, 5.2, 10.0),
		fuzzy(3, 10.4, 15.0),
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Quality != QualityGood {
		t.Fatalf("quality %s, want good", report.Quality)
	}
	if report.Overlaps != 0 || report.LargeGaps != 0 {
		t.Fatalf("unexpected issues: %+v", report)
	}
	if report.TotalScenes != 3 || report.FuzzyMatched != 3 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.TotalDuration != 15.0 {
		t.Fatalf("total duration %v, want 15.0", report.TotalDuration)
	}
	if report.AverageScore != 0.9 {
		t.Fatalf("average score %v, want 0.9", report.AverageScore)
	}
}

func TestValidateCountsOverlaps(t *testing.T) {
	scenes := []timeline.AlignedScene{
		fuzzy(1, 0.0, 6.0),
		fuzzy(2, 5.0, 10.0),
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Overlaps != 1 {
		t.Fatalf("overlaps %d, want 1", report.Overlaps)
	}
	if report.Quality == QualityGood {
		t.Fatal("overlapping alignment must not be good")
	}
}

func TestValidateOverlapSlackTolerated(t *testing.T) {
	// Timestamp jitter under the slack threshold is not an overlap.
	scenes := []timeline.AlignedScene{
		fuzzy(1, 0.0, 5.03),
		fuzzy(2, 5.0, 10.0),
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Overlaps != 0 {
		t.Fatalf("overlaps %d, want 0 within slack", report.Overlaps)
	}
}

func TestValidateFlagsLargeGaps(t *testing.T) {
	scenes := []timeline.AlignedScene{
		fuzzy(1, 0.0, 5.0),
		fuzzy(2, 9.0, 14.0),
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.LargeGaps != 1 {
		t.Fatalf("large gaps %d, want 1 for a 4s gap", report.LargeGaps)
	}
	if report.Quality != QualityAcceptable {
		t.Fatalf("quality %s, want acceptable", report.Quality)
	}
}

func TestValidateAllInterpolatedFails(t *testing.T) {
	scenes := []timeline.AlignedScene{
		{Scene: timeline.Scene{Number: 1}, Method: timeline.MethodInterpolated, Start: 0, End: 5},
		{Scene: timeline.Scene{Number: 2}, Method: timeline.MethodInterpolated, Start: 5, End: 10},
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Quality != QualityFailed {
		t.Fatalf("quality %s, want failed when nothing fuzzy-matched", report.Quality)
	}
}

func TestValidateMostlyInterpolatedNeedsReview(t *testing.T) {
	scenes := []timeline.AlignedScene{
		fuzzy(1, 0.0, 2.0),
		{Scene: timeline.Scene{Number: 2}, Method: timeline.MethodInterpolated, Start: 2, End: 4},
		{Scene: timeline.Scene{Number: 3}, Method: timeline.MethodInterpolated, Start: 4, End: 6},
		{Scene: timeline.Scene{Number: 4}, Method: timeline.MethodInterpolated, Start: 6, End: 8},
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Quality != QualityNeedsReview {
		t.Fatalf("quality %s, want needs_review", report.Quality)
	}
}

func TestValidateNoNarrationOnlyIsGood(t *testing.T) {
	scenes := []timeline.AlignedScene{
		{Scene: timeline.Scene{Number: 1}, Method: timeline.MethodNoNarration},
	}

	report := Validate(scenes, DefaultValidateOptions())
	if report.Quality != QualityGood {
		t.Fatalf("quality %s, want good for a silent-only video", report.Quality)
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	scenes := []timeline.AlignedScene{fuzzy(1, 0.0, 6.0), fuzzy(2, 5.0, 10.0)}
	before := make([]timeline.AlignedScene, len(scenes))
	copy(before, scenes)

	Validate(scenes, DefaultValidateOptions())
	for i := range scenes {
		if scenes[i] != before[i] {
			t.Fatalf("scene %d mutated", i)
		}
	}
}
