package main

import (
	"github.com/spf13/cobra"

	"vidpack/internal/metadata"
	"vidpack/internal/packager"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		title     string
		date      string
		theme     string
		tags      []string
		voice     string
		template  string
		fontSize  string
		lang      string
		textFile  string
		video     string
		audio     string
		thumbnail string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "update <project>",
		Short: "Replace media or metadata in an existing artifact",
		Long: "Update rewrites selected parts of an existing artifact in place. The " +
			"current artifact is snapshotted before any change; media references and " +
			"metadata fields that are not named on the command line stay untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			artifactPath, err := resolveArtifactPath(cfg, args[0])
			if err != nil {
				return err
			}

			var patch metadata.Patch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("date") {
				patch.Date = &date
			}
			if flags.Changed("theme") {
				patch.Theme = &theme
			}
			if flags.Changed("tag") {
				patch.Tags = &tags
			}
			if flags.Changed("voice") {
				patch.Voice = &voice
			}
			if flags.Changed("template") {
				patch.Template = &template
			}
			if flags.Changed("font-size") {
				patch.FontSize = &fontSize
			}
			if flags.Changed("lang") {
				patch.Lang = &lang
			}
			if flags.Changed("text") {
				paragraphs, err := readParagraphs(textFile)
				if err != nil {
					return err
				}
				patch.Paragraphs = &paragraphs
			}
			var patchArg *metadata.Patch
			if !patch.IsZero() {
				patchArg = &patch
			}

			pk, closer, err := ctx.openPackager()
			if err != nil {
				return err
			}
			defer closer()

			result, err := pk.UpdateMedia(cmd.Context(), artifactPath, packager.MediaPaths{
				Video:     video,
				Audio:     audio,
				Thumbnail: thumbnail,
			}, patchArg)
			if err != nil {
				return err
			}
			if asJSON {
				return emitJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd, result.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Replace the artifact title")
	cmd.Flags().StringVar(&date, "date", "", "Replace the publication date")
	cmd.Flags().StringVar(&theme, "theme", "", "Replace the presentation theme")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace the tag list (repeatable)")
	cmd.Flags().StringVar(&voice, "voice", "", "Replace the narration voice identifier")
	cmd.Flags().StringVar(&template, "template", "", "Replace the layout template")
	cmd.Flags().StringVar(&fontSize, "font-size", "", "Replace the base font size")
	cmd.Flags().StringVar(&lang, "lang", "", "Replace the content language tag")
	cmd.Flags().StringVar(&textFile, "text", "", "File with replacement description paragraphs")
	cmd.Flags().StringVar(&video, "video", "", "Replacement video file (MP4)")
	cmd.Flags().StringVar(&audio, "audio", "", "Replacement audio file (MP3)")
	cmd.Flags().StringVar(&thumbnail, "thumb", "", "Replacement thumbnail image (JPEG)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the update result as JSON")
	return cmd
}
