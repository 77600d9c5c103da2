package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidpack/internal/packager"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var (
		allVersions bool
		fix         bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "validate <project>",
		Short: "Check artifact structure, optionally repairing it",
		Long: "Validate checks the project's current artifact (and with " +
			"--all-versions its snapshots) for structural problems. With --fix the " +
			"current artifact is rewritten when a repair rule applies, after being " +
			"snapshotted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			projectDir, err := resolveProjectDir(cfg, args[0])
			if err != nil {
				return err
			}

			pk, closer, err := ctx.openPackager()
			if err != nil {
				return err
			}
			defer closer()

			var reports []packager.FileReport
			if fix {
				reports, err = pk.FixProject(cmd.Context(), projectDir)
			} else {
				reports, err = pk.ValidateProject(cmd.Context(), projectDir, allVersions)
			}
			if err != nil {
				return err
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), reports)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderReportTable(reports))
			failed := 0
			for _, report := range reports {
				if !report.Valid || report.ReadErr != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allVersions, "all-versions", false, "Also validate every snapshot in the versions directory")
	cmd.Flags().BoolVar(&fix, "fix", false, "Apply repair rules to an invalid artifact")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit reports as JSON")
	return cmd
}

func renderReportTable(reports []packager.FileReport) string {
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		status := "valid"
		detail := ""
		switch {
		case report.ReadErr != nil:
			status = "error"
			detail = report.ReadErr.Error()
		case !report.Valid:
			status = "invalid"
			detail = strings.Join(report.Errors, "; ")
		}
		rows = append(rows, []string{
			report.Path,
			status,
			validationMode(report.Basic),
			yesNo(report.Fixed),
			detail,
		})
	}
	return renderTable([]tableColumn{
		{title: "FILE"},
		{title: "STATUS"},
		{title: "MODE"},
		{title: "FIXED"},
		{title: "DETAIL"},
	}, rows)
}
