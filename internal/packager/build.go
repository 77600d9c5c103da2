package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vidpack/internal/datauri"
	"vidpack/internal/journal"
	"vidpack/internal/logging"
	"vidpack/internal/metadata"
	"vidpack/internal/versions"
)

// Build packages a project from source materials into its artifact. When a
// current artifact already exists it is snapshotted first, unconditionally;
// snapshot failure aborts the build before anything is overwritten.
func (p *Packager) Build(ctx context.Context, projectDir string, meta BuildMetadata, media MediaPaths) (Result, error) {
	started := p.now()
	name := projectName(projectDir)
	if err := sanitizeProjectName(name); err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create project directory: %w", err)
	}

	release, err := p.lockProject(projectDir)
	if err != nil {
		return Result{}, err
	}
	defer release()

	opID := uuid.NewString()
	logger := p.logger.With(
		logging.String(logging.FieldOperationID, opID),
		logging.String("project", name),
	)

	artifactPath := filepath.Join(projectDir, name+".svg")
	if _, statErr := os.Stat(artifactPath); statErr == nil {
		snapshot, snapErr := versions.Snapshot(projectDir, artifactPath)
		if snapErr != nil {
			return Result{}, snapErr
		}
		logger.Info("snapshotted previous artifact", logging.String("snapshot", snapshot))
	}

	refs, err := encodeMedia(media)
	if err != nil {
		return Result{}, err
	}

	record := p.newRecord(name, meta, refs)
	metaJSON, err := metadata.Serialize(record)
	if err != nil {
		return Result{}, err
	}

	text := renderShell(shellParams{
		Width:      p.cfg.Artifact.Width,
		Height:     p.cfg.Artifact.Height,
		Title:      record.Title,
		Paragraphs: record.Paragraphs,
		MetaJSON:   metaJSON,
		ThumbURI:   deref(refs.ThumbnailJPG),
	})
	if err := os.WriteFile(artifactPath, []byte(text), 0o644); err != nil {
		return Result{}, fmt.Errorf("write artifact: %w", err)
	}

	check, repaired, err := p.validateAndRepair(ctx, artifactPath, logger)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		ArtifactPath: artifactPath,
		Valid:        check.Valid,
		Basic:        check.Basic,
		Repaired:     repaired,
		Errors:       check.Errors,
	}
	p.record(ctx, journal.Entry{
		OperationID: opID,
		Project:     name,
		Operation:   journal.OpBuild,
		Valid:       result.Valid,
		Basic:       result.Basic,
		Repaired:    result.Repaired,
		Errors:      result.Errors,
		Duration:    p.now().Sub(started),
	})
	logger.Info("build complete",
		logging.Bool("valid", result.Valid),
		logging.Bool("repaired", result.Repaired),
		logging.Duration("took", p.now().Sub(started)))
	return result, nil
}

func (p *Packager) newRecord(name string, meta BuildMetadata, refs metadata.MediaRefs) metadata.Record {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = cases.Title(language.Und).String(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	}
	template := strings.TrimSpace(meta.Template)
	if template == "" {
		template = p.cfg.Artifact.DefaultTemplate
	}
	record := metadata.Record{
		Name:       name,
		Title:      title,
		Date:       optional(meta.Date),
		Theme:      optional(meta.Theme),
		Tags:       meta.Tags,
		Voice:      optional(meta.Voice),
		Template:   template,
		FontSize:   optional(meta.FontSize),
		Paragraphs: meta.Paragraphs,
		CreatedAt:  p.now().UTC().Format(time.RFC3339),
		Media:      refs,
	}
	if lang := strings.TrimSpace(meta.Lang); lang != "" {
		normalized := metadata.NormalizeLang(lang)
		record.Lang = &normalized
	}
	return record
}

func encodeMedia(media MediaPaths) (metadata.MediaRefs, error) {
	var refs metadata.MediaRefs
	if media.Video != "" {
		uri, err := datauri.EncodeFile(media.Video, "video/mp4")
		if err != nil {
			return refs, err
		}
		refs.VideoMP4 = &uri
	}
	if media.Audio != "" {
		uri, err := datauri.EncodeFile(media.Audio, "audio/mpeg")
		if err != nil {
			return refs, err
		}
		refs.AudioMP3 = &uri
	}
	if media.Thumbnail != "" {
		uri, err := datauri.EncodeFile(media.Thumbnail, "image/jpeg")
		if err != nil {
			return refs, err
		}
		refs.ThumbnailJPG = &uri
	}
	return refs, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
