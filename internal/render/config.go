package render

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"scenesync/internal/timeline"
)

// Options controls output geometry.
type Options struct {
	FPS    int
	Width  int
	Height int
}

// DefaultOptions returns the production render geometry.
func DefaultOptions() Options {
	return Options{FPS: 30, Width: 1920, Height: 1080}
}

// Resolution is the output frame size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SceneEntry is one scene's slice of the render timeline.
type SceneEntry struct {
	SceneNumber     int                 `json:"scene_number"`
	ImageIndex      int                 `json:"image_index,omitempty"`
	ImagePath       string              `json:"image_path"`
	DisplayStart    float64             `json:"display_start"`
	DisplayEnd      float64             `json:"display_end"`
	DisplayDuration float64             `json:"display_duration"`
	NarrationStart  float64             `json:"narration_start"`
	NarrationEnd    float64             `json:"narration_end"`
	AlignmentMethod timeline.Method     `json:"alignment_method"`
	AlignmentScore  float64             `json:"alignment_score,omitempty"`
	Style           string              `json:"style"`
	Composition     string              `json:"composition"`
	Act             string              `json:"act"`
	SentenceText    string              `json:"sentence_text,omitempty"`
	KenBurns        timeline.KenBurns   `json:"ken_burns"`
	TransitionIn    timeline.Transition `json:"transition_in"`
	TransitionOut   timeline.Transition `json:"transition_out"`
}

// Config is the complete render configuration handed to the compositor.
type Config struct {
	VideoID              string       `json:"video_id"`
	AudioPath            string       `json:"audio_path"`
	TotalDurationSeconds float64      `json:"total_duration_seconds"`
	FPS                  int          `json:"fps"`
	Resolution           Resolution   `json:"resolution"`
	Scenes               []SceneEntry `json:"scenes"`
}

// Build merges the fully processed scene list into a render configuration.
// An empty videoID gets a generated UUID so every render remains uniquely
// addressable downstream.
func Build(videoID, audioPath, imageDir string, scenes []timeline.TimedScene, opts Options) Config {
	if strings.TrimSpace(videoID) == "" {
		videoID = uuid.NewString()
	}

	totalDuration := 0.0
	if len(scenes) > 0 {
		totalDuration = scenes[len(scenes)-1].DisplayEnd
	}

	entries := make([]SceneEntry, 0, len(scenes))
	for _, s := range scenes {
		entry := SceneEntry{
			SceneNumber:     s.Number,
			ImageIndex:      s.ImageIndex,
			ImagePath:       imagePath(imageDir, s),
			DisplayStart:    round4(s.DisplayStart),
			DisplayEnd:      round4(s.DisplayEnd),
			DisplayDuration: round4(s.DisplayDuration),
			AlignmentMethod: s.Method,
			Style:           s.Style,
			Composition:     s.Composition,
			Act:             s.Act,
			SentenceText:    s.SentenceText,
			KenBurns:        s.KenBurns,
			TransitionIn:    s.TransitionIn,
			TransitionOut:   s.TransitionOut,
		}
		if s.Resolved() {
			entry.NarrationStart = round4(s.Start)
			entry.NarrationEnd = round4(s.End)
		}
		if s.Method == timeline.MethodFuzzyMatch {
			entry.AlignmentScore = s.Score
		}
		entries = append(entries, entry)
	}

	return Config{
		VideoID:              videoID,
		AudioPath:            audioPath,
		TotalDurationSeconds: round4(totalDuration),
		FPS:                  opts.FPS,
		Resolution:           Resolution{Width: opts.Width, Height: opts.Height},
		Scenes:               entries,
	}
}

// imagePath derives the scene's image filename. Scenes carrying an image
// index use the per-image naming scheme; the rest use the per-scene one.
func imagePath(imageDir string, s timeline.TimedScene) string {
	var name string
	if s.ImageIndex > 0 {
		name = fmt.Sprintf("Scene_%02d_%02d.png", s.Number, s.ImageIndex)
	} else {
		name = fmt.Sprintf("scene_%03d.png", s.Number)
	}
	return filepath.Join(imageDir, name)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
