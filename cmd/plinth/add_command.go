package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"plinth/internal/catalog"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var skipExisting bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "add <path> [path...]",
		Short: "Catalog library paths as records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				var added []*catalog.Record
				for _, path := range args {
					record, err := store.AddPath(cmd.Context(), path)
					if err != nil {
						if skipExisting && errors.Is(err, catalog.ErrDuplicatePath) {
							continue
						}
						return err
					}
					added = append(added, record)
				}

				if jsonOut {
					return writeJSON(cmd, added)
				}
				out := cmd.OutOrStdout()
				for _, record := range added {
					fmt.Fprintf(out, "Added record %d: %s\n", record.ID, record.Path)
				}
				if len(added) == 0 {
					fmt.Fprintln(out, "Nothing added")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Ignore paths that are already cataloged")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the added records as JSON")
	return cmd
}
