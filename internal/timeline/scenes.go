package timeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// DecodeScenes reads a scene list from JSON. The payload may be either a
// bare array or an object with a top-level "scenes" key, matching the two
// shapes the scene generator has emitted over time. Scenes are returned
// ordered by scene number.
func DecodeScenes(r io.Reader) ([]Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}

	var scenes []Scene
	if err := json.Unmarshal(data, &scenes); err != nil {
		var wrapped struct {
			Scenes []Scene `json:"scenes"`
		}
		if wrapErr := json.Unmarshal(data, &wrapped); wrapErr != nil {
			return nil, fmt.Errorf("decode scenes: %w", err)
		}
		scenes = wrapped.Scenes
	}

	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].Number < scenes[j].Number
	})
	return scenes, nil
}

// LoadScenes reads a scene list from a JSON file on disk.
func LoadScenes(path string) ([]Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenes %s: %w", path, err)
	}
	defer file.Close()
	return DecodeScenes(file)
}
