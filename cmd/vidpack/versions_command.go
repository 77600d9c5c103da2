package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"vidpack/internal/versions"
)

func newVersionsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "versions <project>",
		Short: "List the snapshots kept for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			projectDir, err := resolveProjectDir(cfg, args[0])
			if err != nil {
				return err
			}

			entries, err := versions.List(projectDir)
			if err != nil {
				return err
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.Itoa(entry.Number),
					filepath.Base(entry.Path),
					formatSize(entry.Size),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
				{title: "VERSION", numeric: true},
				{title: "FILE"},
				{title: "SIZE", numeric: true},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit snapshot entries as JSON")
	return cmd
}
