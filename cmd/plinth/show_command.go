package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"plinth/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var byPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Display one cataloged record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && byPath == "" {
				return fmt.Errorf("provide a record id or --path")
			}
			return ctx.withStore(func(store *catalog.Store) error {
				var record *catalog.Record
				var err error
				if len(args) == 1 {
					id, parseErr := strconv.ParseInt(args[0], 10, 64)
					if parseErr != nil {
						return fmt.Errorf("invalid record id %q", args[0])
					}
					record, err = store.GetByID(cmd.Context(), id)
				} else {
					record, err = store.FindByPath(cmd.Context(), byPath)
				}
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, record)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRecord(record))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&byPath, "path", "", "Look the record up by its exact path")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the record as JSON")
	return cmd
}

func renderRecord(record *catalog.Record) string {
	rows := [][]string{
		{"id", strconv.FormatInt(record.ID, 10)},
		{"path", record.Path},
		{"file_name", record.FileName},
		{"franchise", orDash(record.Franchise)},
		{"character_name", orDash(record.CharacterName)},
		{"lineage_family", orDash(record.LineageFamily)},
		{"faction_hints", orDash(strings.Join(record.FactionHints, ", "))},
		{"scale", renderScale(record)},
		{"segmentation", orDash(record.Segmentation)},
		{"internal_volume", orDash(record.InternalVolume)},
		{"support_state", orDash(record.SupportState)},
		{"part_pack_type", orDash(record.PartPackType)},
		{"content_flag", orDash(record.ContentFlag)},
		{"warnings", orDash(strings.Join(record.Warnings, ", "))},
		{"residual_tokens", orDash(strings.Join(record.ResidualTokens, ", "))},
		{"token_version", strconv.Itoa(record.TokenVersion)},
		{"updated_at", record.UpdatedAt.Format("2006-01-02 15:04:05")},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func renderScale(record *catalog.Record) string {
	switch {
	case record.ScaleRatioDenominator > 0:
		return "1:" + strconv.Itoa(record.ScaleRatioDenominator)
	case record.HeightMM > 0:
		return strconv.Itoa(record.HeightMM) + "mm"
	default:
		return "-"
	}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
