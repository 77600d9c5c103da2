package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidpack/internal/journal"
)

func newJournalCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "journal [project]",
		Short: "Show recent packaging operations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("the journal is disabled in the configuration")
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			project := ""
			if len(args) == 1 {
				project = strings.TrimSpace(args[0])
			}
			entries, err := store.Recent(cmd.Context(), project, limit)
			if err != nil {
				return err
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					entry.Project,
					entry.Operation,
					yesNo(entry.Valid),
					validationMode(entry.Basic),
					yesNo(entry.Repaired),
					strings.Join(entry.Errors, "; "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
				{title: "TIME"},
				{title: "PROJECT"},
				{title: "OPERATION"},
				{title: "VALID"},
				{title: "MODE"},
				{title: "REPAIRED"},
				{title: "ERRORS"},
			}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit journal entries as JSON")
	return cmd
}
