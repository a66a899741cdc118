package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"plinth/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var offset int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				records, err := store.List(cmd.Context(), limit, offset)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, records)
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No records")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						strconv.FormatInt(record.ID, 10),
						record.FileName,
						orDash(record.Franchise),
						orDash(record.CharacterName),
						renderScale(record),
						orDash(record.ContentFlag),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "File", "Franchise", "Character", "Scale", "Flag"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))

				count, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d of %d records\n", len(records), count)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records to list (0 for all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the records as JSON")
	return cmd
}
