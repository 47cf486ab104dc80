package config

const (
	defaultOutputDir = "~/.local/share/scenesync/output"
	defaultLogDir    = "~/.local/share/scenesync/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultMinMatchRatio          = 0.6
	defaultSearchWindowMultiplier = 3
	defaultMinSearchWindow        = 500
	defaultAnchorSize             = 6
	defaultAnchorThreshold        = 0.55
	defaultOverlapSlack           = 0.05
	defaultLargeGapSeconds        = 3.0
	defaultLowScoreThreshold      = 0.7

	defaultPreRoll           = 0.3
	defaultPostHold          = 0.5
	defaultMinDisplaySeconds = 3.0
	defaultMaxDisplaySeconds = 18.0

	defaultCrossfadeDuration          = 0.4
	defaultStyleChangeFadeDuration    = 0.8
	defaultActTransitionBlackDuration = 1.5
	defaultTerminalFadeDuration       = 1.0

	defaultKenBurnsBaseDuration = 11.0

	defaultRenderFPS    = 30
	defaultRenderWidth  = 1920
	defaultRenderHeight = 1080
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Alignment: Alignment{
			MinMatchRatio:          defaultMinMatchRatio,
			SearchWindowMultiplier: defaultSearchWindowMultiplier,
			MinSearchWindow:        defaultMinSearchWindow,
			AnchorSize:             defaultAnchorSize,
			AnchorThreshold:        defaultAnchorThreshold,
			OverlapSlack:           defaultOverlapSlack,
			LargeGapSeconds:        defaultLargeGapSeconds,
			LowScoreThreshold:      defaultLowScoreThreshold,
		},
		Timing: Timing{
			PreRoll:           defaultPreRoll,
			PostHold:          defaultPostHold,
			MinDisplaySeconds: defaultMinDisplaySeconds,
			MaxDisplaySeconds: defaultMaxDisplaySeconds,
		},
		Transitions: Transitions{
			CrossfadeDuration:          defaultCrossfadeDuration,
			StyleChangeFadeDuration:    defaultStyleChangeFadeDuration,
			ActTransitionBlackDuration: defaultActTransitionBlackDuration,
			TerminalFadeDuration:       defaultTerminalFadeDuration,
		},
		KenBurns: KenBurns{
			BaseDuration: defaultKenBurnsBaseDuration,
		},
		Render: Render{
			FPS:    defaultRenderFPS,
			Width:  defaultRenderWidth,
			Height: defaultRenderHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
