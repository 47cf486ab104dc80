package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Inconsistent numeric
// policy fails here, before any scene is processed, because no per-scene
// transform can recover sane output from inverted bounds.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateTransitions(); err != nil {
		return err
	}
	if err := c.validateKenBurns(); err != nil {
		return err
	}
	return c.validateRender()
}

func (c *Config) validateAlignment() error {
	if c.Alignment.MinMatchRatio <= 0 || c.Alignment.MinMatchRatio > 1 {
		return errors.New("alignment.min_match_ratio must be between 0 and 1")
	}
	if c.Alignment.AnchorThreshold <= 0 || c.Alignment.AnchorThreshold > 1 {
		return errors.New("alignment.anchor_threshold must be between 0 and 1")
	}
	if c.Alignment.LowScoreThreshold <= 0 || c.Alignment.LowScoreThreshold > 1 {
		return errors.New("alignment.low_score_threshold must be between 0 and 1")
	}
	if c.Alignment.OverlapSlack < 0 {
		return errors.New("alignment.overlap_slack must be >= 0")
	}
	if c.Alignment.LargeGapSeconds <= 0 {
		return errors.New("alignment.large_gap_seconds must be positive")
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.PreRoll < 0 {
		return errors.New("timing.pre_roll must be >= 0")
	}
	if c.Timing.PostHold < 0 {
		return errors.New("timing.post_hold must be >= 0")
	}
	if c.Timing.MinDisplaySeconds <= 0 {
		return errors.New("timing.min_display_seconds must be positive")
	}
	if c.Timing.MaxDisplaySeconds <= 0 {
		return errors.New("timing.max_display_seconds must be positive")
	}
	if c.Timing.MinDisplaySeconds > c.Timing.MaxDisplaySeconds {
		return fmt.Errorf("timing.min_display_seconds (%.2f) must not exceed timing.max_display_seconds (%.2f)",
			c.Timing.MinDisplaySeconds, c.Timing.MaxDisplaySeconds)
	}
	return nil
}

func (c *Config) validateTransitions() error {
	return ensurePositiveMap(map[string]float64{
		"transitions.crossfade_duration":            c.Transitions.CrossfadeDuration,
		"transitions.style_change_fade_duration":    c.Transitions.StyleChangeFadeDuration,
		"transitions.act_transition_black_duration": c.Transitions.ActTransitionBlackDuration,
		"transitions.terminal_fade_duration":        c.Transitions.TerminalFadeDuration,
	})
}

func (c *Config) validateKenBurns() error {
	if c.KenBurns.BaseDuration <= 0 {
		return errors.New("ken_burns.base_duration must be positive")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.FPS <= 0 {
		return errors.New("render.fps must be positive")
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.New("render.width and render.height must be positive")
	}
	return nil
}

func ensurePositiveMap(values map[string]float64) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
