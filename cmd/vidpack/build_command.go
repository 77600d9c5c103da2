package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidpack/internal/packager"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		meta      packager.BuildMetadata
		textFile  string
		video     string
		audio     string
		thumbnail string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "build <project>",
		Short: "Package a project into its SVG artifact",
		Long: "Build assembles the project's metadata and media files into a single " +
			"self-contained SVG artifact. An existing artifact is snapshotted into " +
			"the project's versions directory before it is replaced.",
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
			if textFile != "" {
				paragraphs, err := readParagraphs(textFile)
				if err != nil {
					return err
				}
				meta.Paragraphs = paragraphs
			}

			pk, closer, err := ctx.openPackager()
			if err != nil {
				return err
			}
			defer closer()

			result, err := pk.Build(cmd.Context(), projectDir, meta, packager.MediaPaths{
				Video:     video,
				Audio:     audio,
				Thumbnail: thumbnail,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&meta.Title, "title", "", "Artifact title (defaults to the project name)")
	cmd.Flags().StringVar(&meta.Date, "date", "", "Publication date")
	cmd.Flags().StringVar(&meta.Theme, "theme", "", "Presentation theme")
	cmd.Flags().StringSliceVar(&meta.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&meta.Voice, "voice", "", "Narration voice identifier")
	cmd.Flags().StringVar(&meta.Template, "template", "", "Layout template")
	cmd.Flags().StringVar(&meta.FontSize, "font-size", "", "Base font size")
	cmd.Flags().StringVar(&meta.Lang, "lang", "", "Content language tag (e.g. en-US)")
	cmd.Flags().StringVar(&textFile, "text", "", "File with description paragraphs separated by blank lines")
	cmd.Flags().StringVar(&video, "video", "", "Video file to embed (MP4)")
	cmd.Flags().StringVar(&audio, "audio", "", "Audio file to embed (MP3)")
	cmd.Flags().StringVar(&thumbnail, "thumb", "", "Thumbnail image to embed (JPEG)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the build result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, result packager.Result) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, renderStatusLine("Artifact", statusOK, result.ArtifactPath, colorize))
	mode := validationMode(result.Basic)
	if result.Valid {
		fmt.Fprintln(out, renderStatusLine("Validation", statusOK, mode, colorize))
	} else {
		fmt.Fprintln(out, renderStatusLine("Validation", statusError, mode, colorize))
		for _, line := range result.Errors {
			fmt.Fprintf(out, "%s%s\n", statusIndent+statusIndent, line)
		}
	}
	if result.Repaired {
		fmt.Fprintln(out, renderStatusLine("Repair", statusWarn, "automatic repair applied", colorize))
	}
}
