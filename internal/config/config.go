package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"scenesync/internal/align"
	"scenesync/internal/kenburns"
	"scenesync/internal/render"
	"scenesync/internal/timing"
	"scenesync/internal/transitions"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Alignment contains fuzzy-matching and diagnostic thresholds.
type Alignment struct {
	MinMatchRatio          float64 `toml:"min_match_ratio"`
	SearchWindowMultiplier int     `toml:"search_window_multiplier"`
	MinSearchWindow        int     `toml:"min_search_window"`
	AnchorSize             int     `toml:"anchor_size"`
	AnchorThreshold        float64 `toml:"anchor_threshold"`
	OverlapSlack           float64 `toml:"overlap_slack"`
	LargeGapSeconds        float64 `toml:"large_gap_seconds"`
	LowScoreThreshold      float64 `toml:"low_score_threshold"`
}

// Timing contains the display-window policy in seconds.
type Timing struct {
	PreRoll           float64 `toml:"pre_roll"`
	PostHold          float64 `toml:"post_hold"`
	MinDisplaySeconds float64 `toml:"min_display_seconds"`
	MaxDisplaySeconds float64 `toml:"max_display_seconds"`
}

// Transitions contains transition durations in seconds.
type Transitions struct {
	CrossfadeDuration          float64 `toml:"crossfade_duration"`
	StyleChangeFadeDuration    float64 `toml:"style_change_fade_duration"`
	ActTransitionBlackDuration float64 `toml:"act_transition_black_duration"`
	TerminalFadeDuration       float64 `toml:"terminal_fade_duration"`
}

// KenBurns contains camera-motion tuning.
type KenBurns struct {
	BaseDuration float64 `toml:"base_duration"`
}

// Render contains output geometry for the compositor.
type Render struct {
	FPS    int `toml:"fps"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for scenesync.
//
// Sections by subsystem:
//   - Paths: output and log directories
//   - Alignment: fuzzy matcher thresholds and validator limits
//   - Timing: pre-roll, post-hold, and display-duration bounds
//   - Transitions: per-kind transition durations
//   - KenBurns: camera-motion speed calibration
//   - Render: fps and resolution for the render config
//   - Logging: log format and level
type Config struct {
	Paths       Paths       `toml:"paths"`
	Alignment   Alignment   `toml:"alignment"`
	Timing      Timing      `toml:"timing"`
	Transitions Transitions `toml:"transitions"`
	KenBurns    KenBurns    `toml:"ken_burns"`
	Render      Render      `toml:"render"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scenesync/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("scenesync.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// AlignOptions converts the alignment section into matcher options.
func (c *Config) AlignOptions() align.Options {
	return align.Options{
		MinMatchRatio:          c.Alignment.MinMatchRatio,
		SearchWindowMultiplier: c.Alignment.SearchWindowMultiplier,
		MinSearchWindow:        c.Alignment.MinSearchWindow,
		AnchorSize:             c.Alignment.AnchorSize,
		AnchorThreshold:        c.Alignment.AnchorThreshold,
	}
}

// ValidateOptions converts the alignment section into validator options.
func (c *Config) ValidateOptions() align.ValidateOptions {
	return align.ValidateOptions{
		OverlapSlack:      c.Alignment.OverlapSlack,
		LargeGapSeconds:   c.Alignment.LargeGapSeconds,
		LowScoreThreshold: c.Alignment.LowScoreThreshold,
	}
}

// TimingPolicy converts the timing section into the display-window policy.
func (c *Config) TimingPolicy() timing.Policy {
	return timing.Policy{
		PreRoll:    c.Timing.PreRoll,
		PostHold:   c.Timing.PostHold,
		MinDisplay: c.Timing.MinDisplaySeconds,
		MaxDisplay: c.Timing.MaxDisplaySeconds,
	}
}

// TransitionDurations converts the transitions section.
func (c *Config) TransitionDurations() transitions.Durations {
	return transitions.Durations{
		Crossfade:    c.Transitions.CrossfadeDuration,
		StyleChange:  c.Transitions.StyleChangeFadeDuration,
		ActDip:       c.Transitions.ActTransitionBlackDuration,
		TerminalFade: c.Transitions.TerminalFadeDuration,
	}
}

// KenBurnsOptions converts the ken_burns section. The speed clamp reuses
// the timing minimum so short scenes never race the camera.
func (c *Config) KenBurnsOptions() kenburns.Options {
	return kenburns.Options{
		BaseDuration: c.KenBurns.BaseDuration,
		MinDisplay:   c.Timing.MinDisplaySeconds,
	}
}

// RenderOptions converts the render section.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		FPS:    c.Render.FPS,
		Width:  c.Render.Width,
		Height: c.Render.Height,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
