package words

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"scenesync/internal/timeline"
)

type rawWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type rawPayload struct {
	Words    []rawWord `json:"words"`
	Segments []struct {
		Words []rawWord `json:"words"`
	} `json:"segments"`
}

// Decode reads word timestamps from the transcription service's JSON.
// Accepted shapes, in order: a bare array of words, an object with a flat
// top-level "words" list, or words nested per segment (the older response
// format).
func Decode(r io.Reader) ([]timeline.Word, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	var flat []rawWord
	if err := json.Unmarshal(data, &flat); err == nil {
		return convert(flat), nil
	}

	var payload rawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	if len(payload.Words) > 0 {
		return convert(payload.Words), nil
	}
	var nested []rawWord
	for _, segment := range payload.Segments {
		nested = append(nested, segment.Words...)
	}
	return convert(nested), nil
}

// Load reads word timestamps from a JSON file on disk.
func Load(path string) ([]timeline.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words %s: %w", path, err)
	}
	defer file.Close()
	return Decode(file)
}

// Verify checks the boundary contract: non-empty text, start < end, and
// non-decreasing starts across the sequence.
func Verify(words []timeline.Word) error {
	prev := 0.0
	for i, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			return fmt.Errorf("word %d: empty text", i)
		}
		if w.Start >= w.End {
			return fmt.Errorf("word %d %q: start %.3f not before end %.3f", i, w.Text, w.Start, w.End)
		}
		if w.Start < prev {
			return fmt.Errorf("word %d %q: start %.3f precedes previous start %.3f", i, w.Text, w.Start, prev)
		}
		prev = w.Start
	}
	return nil
}

func convert(raw []rawWord) []timeline.Word {
	out := make([]timeline.Word, 0, len(raw))
	for _, w := range raw {
		out = append(out, timeline.Word{
			Text:  strings.TrimSpace(w.Word),
			Start: w.Start,
			End:   w.End,
		})
	}
	return out
}
