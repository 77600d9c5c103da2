package packager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"vidpack/internal/journal"
	"vidpack/internal/logging"
	"vidpack/internal/repair"
	"vidpack/internal/versions"
)

// FileReport is the validation outcome for one file during a project sweep.
type FileReport struct {
	Path    string
	Valid   bool
	Basic   bool
	Fixed   bool
	Errors  []string
	ReadErr error
}

// ValidateProject validates a project's current artifact and, when
// includeVersions is set, every snapshot in its version directory. Pure read;
// nothing is rewritten.
func (p *Packager) ValidateProject(ctx context.Context, projectDir string, includeVersions bool) ([]FileReport, error) {
	targets, err := p.sweepTargets(projectDir, includeVersions)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, 0, len(targets))
	for _, target := range targets {
		res, err := p.checker.Check(ctx, target)
		if err != nil {
			reports = append(reports, FileReport{Path: target, ReadErr: err})
			continue
		}
		reports = append(reports, FileReport{
			Path:   target,
			Valid:  res.Valid,
			Basic:  res.Basic,
			Errors: res.Errors,
		})
	}
	return reports, nil
}

// FixProject re-validates the project's files and rewrites the ones a repair
// pass can change, snapshotting the current artifact before it is touched.
// Snapshots themselves are immutable history and are never rewritten.
func (p *Packager) FixProject(ctx context.Context, projectDir string) ([]FileReport, error) {
	started := p.now()
	name := projectName(projectDir)
	artifactPath := filepath.Join(projectDir, name+".svg")

	release, err := p.lockProject(projectDir)
	if err != nil {
		return nil, err
	}
	defer release()

	opID := uuid.NewString()
	logger := p.logger.With(
		logging.String(logging.FieldOperationID, opID),
		logging.String("project", name),
	)

	res, err := p.checker.Check(ctx, artifactPath)
	if err != nil {
		return nil, err
	}
	if res.Valid {
		return []FileReport{{Path: artifactPath, Valid: true, Basic: res.Basic}}, nil
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	repaired := repair.Apply(string(data))
	if repaired == string(data) {
		return []FileReport{{Path: artifactPath, Valid: false, Basic: res.Basic, Errors: res.Errors}}, nil
	}

	if _, err := versions.Snapshot(projectDir, artifactPath); err != nil {
		return nil, err
	}
	if err := os.WriteFile(artifactPath, []byte(repaired), 0o644); err != nil {
		return nil, fmt.Errorf("write repaired artifact: %w", err)
	}
	logger.Info("rewrote artifact during batch fix", logging.String("artifact", artifactPath))

	final, err := p.checker.Check(ctx, artifactPath)
	if err != nil {
		return nil, err
	}
	report := FileReport{
		Path:   artifactPath,
		Valid:  final.Valid,
		Basic:  final.Basic,
		Fixed:  true,
		Errors: final.Errors,
	}
	p.record(ctx, journal.Entry{
		OperationID: opID,
		Project:     name,
		Operation:   journal.OpBatchFix,
		Valid:       report.Valid,
		Basic:       report.Basic,
		Repaired:    true,
		Errors:      report.Errors,
		Duration:    p.now().Sub(started),
	})
	return []FileReport{report}, nil
}

func (p *Packager) sweepTargets(projectDir string, includeVersions bool) ([]string, error) {
	name := projectName(projectDir)
	artifactPath := filepath.Join(projectDir, name+".svg")
	if _, err := os.Stat(artifactPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, artifactPath)
		}
		return nil, fmt.Errorf("stat artifact: %w", err)
	}

	targets := []string{artifactPath}
	if includeVersions {
		entries, err := versions.List(projectDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			targets = append(targets, entry.Path)
		}
	}
	return targets, nil
}
