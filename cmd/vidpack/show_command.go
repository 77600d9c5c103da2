package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidpack/internal/metadata"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <project>",
		Short: "Display the metadata embedded in an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			artifactPath, err := resolveArtifactPath(cfg, args[0])
			if err != nil {
				return err
			}

			pk, closer, err := ctx.openPackager()
			if err != nil {
				return err
			}
			defer closer()

			record, err := pk.ReadMetadata(artifactPath)
			if err != nil {
				return err
			}
			if record == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s carries no readable metadata block\n", artifactPath)
				return nil
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), record)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecordTable(record))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the metadata as JSON")
	return cmd
}

func renderRecordTable(record *metadata.Record) string {
	rows := [][]string{
		{"Name", record.Name},
		{"Title", record.Title},
		{"Template", record.Template},
		{"Created", record.CreatedAt},
	}
	appendOptional := func(label string, value *string) {
		if value != nil && *value != "" {
			rows = append(rows, []string{label, *value})
		}
	}
	appendOptional("Modified", record.ModifiedAt)
	appendOptional("Date", record.Date)
	appendOptional("Theme", record.Theme)
	appendOptional("Voice", record.Voice)
	appendOptional("Font size", record.FontSize)
	appendOptional("Language", record.Lang)
	if len(record.Tags) > 0 {
		rows = append(rows, []string{"Tags", strings.Join(record.Tags, ", ")})
	}
	if len(record.Paragraphs) > 0 {
		rows = append(rows, []string{"Paragraphs", fmt.Sprintf("%d", len(record.Paragraphs))})
	}
	rows = append(rows,
		[]string{"Video", describeMediaRef(record.Media.VideoMP4)},
		[]string{"Audio", describeMediaRef(record.Media.AudioMP3)},
		[]string{"Thumbnail", describeMediaRef(record.Media.ThumbnailJPG)},
	)
	return renderTable([]tableColumn{{title: "FIELD"}, {title: "VALUE"}}, rows)
}

// describeMediaRef summarizes an embedded data URI without dumping the
// payload into the terminal.
func describeMediaRef(uri *string) string {
	if uri == nil || *uri == "" {
		return "(none)"
	}
	mime := *uri
	if idx := strings.Index(mime, ";"); idx > 0 {
		mime = strings.TrimPrefix(mime[:idx], "data:")
	}
	return fmt.Sprintf("%s, %s embedded", mime, formatSize(int64(len(*uri))))
}
