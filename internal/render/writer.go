package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"scenesync/internal/timeline"
)

// Write serializes the render configuration to disk, creating parent
// directories as needed.
func (c Config) Write(path string) error {
	return writeJSON(path, c)
}

// sceneTiming is one row of the scene_timing.json debug dump.
type sceneTiming struct {
	SceneNumber     int             `json:"scene_number"`
	StartTime       *float64        `json:"start_time"`
	EndTime         *float64        `json:"end_time"`
	DisplayStart    float64         `json:"display_start"`
	DisplayEnd      float64         `json:"display_end"`
	DisplayDuration float64         `json:"display_duration"`
	AlignmentMethod timeline.Method `json:"alignment_method"`
	AlignmentScore  float64         `json:"alignment_score,omitempty"`
}

// WriteSceneTiming dumps intermediate per-scene timestamps for debugging.
// Narration times are null for no-narration and unresolved scenes, keeping
// the dump honest about which windows were never anchored to audio.
func WriteSceneTiming(scenes []timeline.TimedScene, path string) error {
	rows := make([]sceneTiming, 0, len(scenes))
	for _, s := range scenes {
		row := sceneTiming{
			SceneNumber:     s.Number,
			DisplayStart:    s.DisplayStart,
			DisplayEnd:      s.DisplayEnd,
			DisplayDuration: s.DisplayDuration,
			AlignmentMethod: s.Method,
		}
		if s.Resolved() {
			start, end := s.Start, s.End
			row.StartTime = &start
			row.EndTime = &end
		}
		if s.Method == timeline.MethodFuzzyMatch {
			row.AlignmentScore = s.Score
		}
		rows = append(rows, row)
	}
	return writeJSON(path, rows)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
