package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scenesync/internal/align"
	"scenesync/internal/logging"
	"scenesync/internal/pipeline"
	"scenesync/internal/render"
	"scenesync/internal/timeline"
	"scenesync/internal/words"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var (
		scenesPath string
		wordsPath  string
		audioPath  string
		imageDir   string
		videoID    string
		outputDir  string
		timingDump bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run the full alignment and timing pipeline and write a render config",
		Long: `Align scripted scenes to transcript word timestamps, adjust display
windows, assign transitions and camera motion, and write the resulting
render_config.json for the compositor.

Examples:
  scenesync sync --scenes scenes.json --words words.json --audio narration.wav
  scenesync sync --scenes scenes.json --words words.json --out ./build --timing-dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			// Resolve the video ID up front so every log line carries it.
			id := strings.TrimSpace(videoID)
			if id == "" {
				id = uuid.NewString()
			}
			logger = logger.With(logging.String(logging.FieldVideoID, id))

			scenes, err := timeline.LoadScenes(scenesPath)
			if err != nil {
				return err
			}
			if len(scenes) == 0 {
				return fmt.Errorf("no scenes in %s", scenesPath)
			}
			wordList, err := words.Load(wordsPath)
			if err != nil {
				return err
			}
			if err := words.Verify(wordList); err != nil {
				return fmt.Errorf("word timestamps: %w", err)
			}

			result := pipeline.Run(scenes, wordList, cfg, logger)

			// Honor an interrupt before any file is written.
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			out := strings.TrimSpace(outputDir)
			if out == "" {
				out = cfg.Paths.OutputDir
			}

			renderCfg := render.Build(id, audioPath, imageDir, result.Scenes, cfg.RenderOptions())
			configPath := filepath.Join(out, "render_config.json")
			if err := renderCfg.Write(configPath); err != nil {
				return err
			}
			if timingDump {
				timingPath := filepath.Join(out, "scene_timing.json")
				if err := render.WriteSceneTiming(result.Scenes, timingPath); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, struct {
					RenderConfig string       `json:"render_config"`
					VideoID      string       `json:"video_id"`
					Report       align.Report `json:"report"`
				}{configPath, renderCfg.VideoID, result.Report})
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderReport(result.Report))
			fmt.Fprintf(stdout, "\nWrote %s (%d scenes, %.2fs)\n",
				configPath, len(renderCfg.Scenes), renderCfg.TotalDurationSeconds)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenesPath, "scenes", "", "Path to the scene list JSON (required)")
	cmd.Flags().StringVar(&wordsPath, "words", "", "Path to the word-timestamp JSON (required)")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Path to the narration audio file, recorded in the render config")
	cmd.Flags().StringVar(&imageDir, "image-dir", "", "Directory containing the generated scene images")
	cmd.Flags().StringVar(&videoID, "video-id", "", "Video identifier (generated when empty)")
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&timingDump, "timing-dump", false, "Also write scene_timing.json for debugging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit a JSON summary instead of the table")
	_ = cmd.MarkFlagRequired("scenes")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}
