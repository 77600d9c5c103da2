package packager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"vidpack/internal/datauri"
	"vidpack/internal/journal"
	"vidpack/internal/logging"
	"vidpack/internal/metadata"
	"vidpack/internal/versions"
)

// UpdateMedia patches an existing artifact's embedded media and metadata in
// place. The artifact must exist and contain an extractable record; otherwise
// the update is not applied and no snapshot is taken. A snapshot always
// precedes the rewrite.
func (p *Packager) UpdateMedia(ctx context.Context, artifactPath string, media MediaPaths, patch *metadata.Patch) (UpdateResult, error) {
	started := p.now()
	projectDir := filepath.Dir(artifactPath)
	name := projectName(projectDir)

	if _, err := os.Stat(artifactPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return UpdateResult{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, artifactPath)
		}
		return UpdateResult{}, fmt.Errorf("stat artifact: %w", err)
	}

	// The read has to happen inside the critical section: text and splice
	// offsets taken before the lock could describe an artifact another writer
	// has since replaced.
	release, err := p.lockProject(projectDir)
	if err != nil {
		return UpdateResult{}, err
	}
	defer release()

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return UpdateResult{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, artifactPath)
		}
		return UpdateResult{}, fmt.Errorf("read artifact: %w", err)
	}
	text := string(data)

	payload, start, end, ok := extractScript(text)
	if !ok {
		return UpdateResult{}, fmt.Errorf("%w: no metadata block in %s", metadata.ErrUnparsable, artifactPath)
	}
	record, err := metadata.Deserialize(payload)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("extract metadata from %s: %w", artifactPath, err)
	}

	opID := uuid.NewString()
	logger := p.logger.With(
		logging.String(logging.FieldOperationID, opID),
		logging.String("project", name),
	)

	snapshot, err := versions.Snapshot(projectDir, artifactPath)
	if err != nil {
		return UpdateResult{}, err
	}
	logger.Info("snapshotted artifact before update", logging.String("snapshot", snapshot))

	applied := metadata.Patch{}
	if patch != nil {
		applied = *patch
	}
	thumbChanged := false
	if media.Video != "" {
		uri, err := datauri.EncodeFile(media.Video, "video/mp4")
		if err != nil {
			return UpdateResult{}, err
		}
		applied.Media.VideoMP4 = &uri
	}
	if media.Audio != "" {
		uri, err := datauri.EncodeFile(media.Audio, "audio/mpeg")
		if err != nil {
			return UpdateResult{}, err
		}
		applied.Media.AudioMP3 = &uri
	}
	if media.Thumbnail != "" {
		uri, err := datauri.EncodeFile(media.Thumbnail, "image/jpeg")
		if err != nil {
			return UpdateResult{}, err
		}
		applied.Media.ThumbnailJPG = &uri
		thumbChanged = true
	}

	merged := metadata.Merge(record, applied, p.now())
	metaJSON, err := metadata.Serialize(merged)
	if err != nil {
		return UpdateResult{}, err
	}

	// Splice the new record between the known offsets of the old one; the
	// rest of the document is left byte-identical.
	text = text[:start] + metaJSON + text[end:]
	if thumbChanged {
		rewritten, found := replaceThumbHref(text, *applied.Media.ThumbnailJPG)
		if found {
			text = rewritten
		} else {
			logger.Warn("no visible thumbnail element to update", logging.String("artifact", artifactPath))
		}
	}

	if err := os.WriteFile(artifactPath, []byte(text), 0o644); err != nil {
		return UpdateResult{}, fmt.Errorf("write artifact: %w", err)
	}

	check, repaired, err := p.validateAndRepair(ctx, artifactPath, logger)
	if err != nil {
		return UpdateResult{}, err
	}

	result := UpdateResult{
		Applied: true,
		Result: Result{
			ArtifactPath: artifactPath,
			Valid:        check.Valid,
			Basic:        check.Basic,
			Repaired:     repaired,
			Errors:       check.Errors,
		},
	}
	p.record(ctx, journal.Entry{
		OperationID: opID,
		Project:     name,
		Operation:   journal.OpUpdate,
		Valid:       result.Valid,
		Basic:       result.Basic,
		Repaired:    result.Repaired,
		Errors:      result.Errors,
		Duration:    p.now().Sub(started),
	})
	logger.Info("update complete",
		logging.Bool("valid", result.Valid),
		logging.Bool("repaired", result.Repaired))
	return result, nil
}
