package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"plinth/internal/catalog"
	"plinth/internal/enrich"
	"plinth/internal/logging"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var apply bool
	var force bool
	var limit int
	var batch int
	var recordID int64
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Infer metadata for cataloged records",
		Long: `Enrich pages every record through the inference pipeline and reports
the resulting change sets. Without --apply nothing is written. Applied
changes only fill empty fields; use --force to overwrite.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if batch > 0 {
				cfg.Enrich.BatchSize = batch
			}

			engine, err := ctx.buildEngine()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *catalog.Store) error {
				runner := enrich.NewRunner(store, engine, cfg,
					enrich.WithForce(force),
					enrich.WithMaxRecords(limit),
					enrich.WithLogger(logging.NewComponentLogger(ctx.ensureLogger(), "enrich")),
				)

				if recordID > 0 {
					change, err := runner.One(cmd.Context(), recordID, apply)
					if err != nil {
						return err
					}
					if jsonOut {
						return writeJSON(cmd, change)
					}
					printChanges(cmd, []enrich.Change{*change})
					return nil
				}

				var result *enrich.Result
				if apply {
					result, err = runner.Apply(cmd.Context())
				} else {
					result, err = runner.DryRun(cmd.Context())
				}
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, result)
				}

				printChanges(cmd, result.Changes)
				out := cmd.OutOrStdout()
				mode := "dry-run"
				if result.Applied {
					mode = "applied"
				}
				fmt.Fprintf(out, "Run %s (%s): %d records processed, %d changed in %s\n",
					result.RunID, mode, result.Processed, result.Changed, result.Elapsed.Round(time.Millisecond))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the computed change sets")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite non-empty fields with fresh assignments")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of records visited (0 for all)")
	cmd.Flags().IntVar(&batch, "batch", 0, "Override the configured batch size")
	cmd.Flags().Int64Var(&recordID, "id", 0, "Enrich a single record by identifier")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run result as JSON")
	return cmd
}

func printChanges(cmd *cobra.Command, changes []enrich.Change) {
	out := cmd.OutOrStdout()
	for _, change := range changes {
		if len(change.Fields) == 0 {
			fmt.Fprintf(out, "record %d: no changes (%s)\n", change.RecordID, change.Path)
			continue
		}
		fmt.Fprintf(out, "record %d: %s\n", change.RecordID, change.Path)
		for _, field := range change.Fields {
			old := field.Old
			if old == "" {
				old = "(empty)"
			}
			fmt.Fprintf(out, "  %-24s %s -> %s\n", field.Column, old, field.New)
		}
	}
	if len(changes) > 0 {
		fmt.Fprintln(out, strings.Repeat("-", 40))
	}
}
