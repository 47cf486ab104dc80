package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, ctx context.Context, args []string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const scenesFixture = `[
	{"scene_number": 1, "script_excerpt": "the harbor lights flicker against the evening fog",
	 "style": "realistic", "act": "act1", "composition": "wide"}
]`

const wordsFixture = `[
	{"word": "the", "start": 0.0, "end": 0.32},
	{"word": "harbor", "start": 0.4, "end": 0.72},
	{"word": "lights", "start": 0.8, "end": 1.12},
	{"word": "flicker", "start": 1.2, "end": 1.52},
	{"word": "against", "start": 1.6, "end": 1.92},
	{"word": "the", "start": 2.0, "end": 2.32},
	{"word": "evening", "start": 2.4, "end": 2.72},
	{"word": "fog", "start": 2.8, "end": 3.12}
]`

func TestSyncWritesRenderConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	inputs := t.TempDir()
	outDir := t.TempDir()

	scenesPath := writeFixture(t, inputs, "scenes.json", scenesFixture)
	wordsPath := writeFixture(t, inputs, "words.json", wordsFixture)

	out, err := runCLI(t, context.Background(), []string{
		"sync",
		"--scenes", scenesPath,
		"--words", wordsPath,
		"--out", outDir,
		"--video-id", "vid-1",
		"--json",
	})
	if err != nil {
		t.Fatalf("sync: %v (output: %s)", err, out)
	}

	var summary struct {
		RenderConfig string `json:"render_config"`
		VideoID      string `json:"video_id"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v (%q)", err, out)
	}
	if summary.VideoID != "vid-1" {
		t.Fatalf("video_id %q, want vid-1", summary.VideoID)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "render_config.json"))
	if err != nil {
		t.Fatalf("read render config: %v", err)
	}
	var renderCfg map[string]any
	if err := json.Unmarshal(data, &renderCfg); err != nil {
		t.Fatalf("render config is not JSON: %v", err)
	}
	if renderCfg["video_id"] != "vid-1" {
		t.Fatalf("render config video_id %v, want vid-1", renderCfg["video_id"])
	}
	scenes, ok := renderCfg["scenes"].([]any)
	if !ok || len(scenes) != 1 {
		t.Fatalf("render config scenes %v, want one entry", renderCfg["scenes"])
	}
}

func TestSyncHonorsCanceledContext(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runCLI(t, ctx, []string{
		"sync", "--scenes", "missing.json", "--words", "missing.json",
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, context.Background(), []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCLI(t, context.Background(), []string{"--config", target, "config", "validate"})
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}
