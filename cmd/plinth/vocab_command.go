package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plinth/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary utilities",
	}
	vocabCmd.AddCommand(newVocabCheckCommand(ctx))
	return vocabCmd
}

func newVocabCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the vocabulary directory and report its contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			snap, stats, err := vocab.LoadDir(cfg.Paths.VocabDir, ctx.ensureLogger())
			if err != nil {
				return err
			}
			counts := snap.Counts()

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"dir":    cfg.Paths.VocabDir,
					"stats":  stats,
					"counts": counts,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vocabulary dir: %s\n", cfg.Paths.VocabDir)
			fmt.Fprintf(out, "Files loaded: %d (%d franchise manifests, %d alias lists, %d skipped)\n",
				stats.Files, stats.Franchises, stats.Lists, stats.Skipped)
			fmt.Fprintf(out, "Franchises: %d\n", counts.Franchises)
			fmt.Fprintf(out, "Character aliases: %d\n", counts.CharacterAliases)
			fmt.Fprintf(out, "Franchise aliases: %d\n", counts.FranchiseAliases)
			fmt.Fprintf(out, "Designers: %d, lineages: %d, factions: %d\n",
				counts.Designers, counts.Lineages, counts.Factions)
			fmt.Fprintf(out, "Stopwords: %d, segmentation words: %d\n", counts.Stopwords, counts.Words)
			if stats.Skipped > 0 {
				fmt.Fprintln(out, "Some entries were skipped; run with logging.level=debug for details")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}
