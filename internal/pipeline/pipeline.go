package pipeline

import (
	"log/slog"

	"scenesync/internal/align"
	"scenesync/internal/config"
	"scenesync/internal/kenburns"
	"scenesync/internal/logging"
	"scenesync/internal/timeline"
	"scenesync/internal/timing"
	"scenesync/internal/transitions"
)

// Result carries the final per-scene timeline and the alignment
// diagnostics gathered along the way.
type Result struct {
	Scenes []timeline.TimedScene
	Report align.Report
}

// Run executes the full scene-to-audio pipeline: fuzzy alignment, gap
// interpolation, diagnostic validation, display-window adjustment,
// transition assignment, and camera-motion assignment. It is a pure
// function of its inputs; the caller owns all I/O.
func Run(scenes []timeline.Scene, words []timeline.Word, cfg *config.Config, logger *slog.Logger) Result {
	log := logging.NewComponentLogger(logger, "pipeline")

	aligned := align.Align(scenes, words, cfg.AlignOptions())
	aligned = align.Interpolate(aligned, align.AudioEnd(words))

	report := align.Validate(aligned, cfg.ValidateOptions())
	log.Info("alignment complete", logging.Args(
		logging.Int("scenes", report.TotalScenes),
		logging.Int("fuzzy_matched", report.FuzzyMatched),
		logging.Int("interpolated", report.Interpolated),
		logging.Int("unresolved", report.Unresolved),
		logging.Float64("avg_score", report.AverageScore),
		logging.String("quality", string(report.Quality)),
	)...)
	for _, issue := range report.Issues {
		log.Warn("alignment issue", logging.Args(logging.String("detail", issue))...)
	}

	timed := timing.Adjust(aligned, cfg.TimingPolicy())
	timed = transitions.Assign(timed, cfg.TransitionDurations())
	timed = kenburns.Assign(timed, cfg.KenBurnsOptions())

	if len(timed) > 0 {
		log.Info("timeline complete", logging.Args(
			logging.Float64("total_seconds", timed[len(timed)-1].DisplayEnd),
			logging.Int("scenes", len(timed)),
		)...)
	}

	return Result{Scenes: timed, Report: report}
}
