package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scenesync/internal/align"
	"scenesync/internal/timeline"
	"scenesync/internal/words"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		scenesPath string
		wordsPath  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Align scenes and print the quality report without writing output",
		Long: `Run alignment and interpolation only, then print the validator's
diagnostics. Useful for checking transcript quality before committing to
a full render.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			scenes, err := timeline.LoadScenes(scenesPath)
			if err != nil {
				return err
			}
			wordList, err := words.Load(wordsPath)
			if err != nil {
				return err
			}
			if err := words.Verify(wordList); err != nil {
				return fmt.Errorf("word timestamps: %w", err)
			}

			aligned := align.Align(scenes, wordList, cfg.AlignOptions())
			aligned = align.Interpolate(aligned, align.AudioEnd(wordList))
			report := align.Validate(aligned, cfg.ValidateOptions())

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenesPath, "scenes", "", "Path to the scene list JSON (required)")
	cmd.Flags().StringVar(&wordsPath, "words", "", "Path to the word-timestamp JSON (required)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	_ = cmd.MarkFlagRequired("scenes")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}
