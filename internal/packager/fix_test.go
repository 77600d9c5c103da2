package packager_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vidpack/internal/config"
	"vidpack/internal/journal"
	"vidpack/internal/packager"
	"vidpack/internal/testsupport"
	"vidpack/internal/versions"
)

// strictStub stands in for an xmllint that rejects bare boolean attributes:
// it fails until the repair pass has expanded them, then passes.
func strictStub(t *testing.T, cfg *config.Config) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "xmllint")
	script := `#!/bin/sh
if grep -q 'controls="controls"' "$2"; then
  exit 0
fi
echo "$2:3: parser error : Specification mandates value for attribute controls" >&2
exit 1
`
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg.Validator.XMLLintBin = target
}

func writeBrokenArtifact(t *testing.T, cfg *config.Config) string {
	t.Helper()
	dir := cfg.ProjectDir("broken")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "broken.svg")
	body := `<svg xmlns="http://www.w3.org/2000/svg" width="1280" height="720">
<foreignObject><video controls autoplay></video></foreignObject>
</svg>
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFixProjectRepairsAndSnapshots(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	strictStub(t, cfg)
	path := writeBrokenArtifact(t, cfg)
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 50 * time.Millisecond)
	}

	pk := packager.New(cfg, packager.WithJournal(store), packager.WithClock(clock))
	reports, err := pk.FixProject(context.Background(), cfg.ProjectDir("broken"))
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected one report, got %d", len(reports))
	}
	report := reports[0]
	if !report.Fixed || !report.Valid {
		t.Fatalf("repair did not converge: %#v", report)
	}

	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fixed), `controls="controls" autoplay="autoplay"`) {
		t.Fatalf("boolean attributes not expanded:\n%s", fixed)
	}

	entries, err := versions.List(cfg.ProjectDir("broken"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one snapshot before rewrite, got %d", len(entries))
	}
	snap, err := os.ReadFile(entries[0].Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(snap) != string(original) {
		t.Fatal("snapshot must preserve the pre-repair bytes")
	}

	recorded, err := store.Recent(context.Background(), "broken", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recorded) != 1 || recorded[0].Operation != journal.OpBatchFix {
		t.Fatalf("expected one batch_fix entry: %#v", recorded)
	}
	if recorded[0].Duration <= 0 {
		t.Fatalf("batch fix duration not recorded: %#v", recorded[0])
	}
}

func TestFixProjectLeavesUnfixableFilesAlone(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithXMLLintStub(1))
	dir := cfg.ProjectDir("stuck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "stuck.svg")
	body := "<svg><desc>nothing to repair</desc></svg>"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	pk := packager.New(cfg)
	reports, err := pk.FixProject(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if reports[0].Fixed || reports[0].Valid {
		t.Fatalf("nothing should have changed: %#v", reports[0])
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != body {
		t.Fatal("artifact rewritten despite no applicable repair")
	}
	if _, statErr := os.Stat(filepath.Join(dir, versions.DirName)); !os.IsNotExist(statErr) {
		t.Fatal("no snapshot may be taken when nothing is rewritten")
	}
}

func TestValidationFailureIsResultNotError(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithXMLLintStub(1), testsupport.WithRepairDisabled())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	pk := packager.New(cfg)

	res, err := pk.Build(context.Background(), cfg.ProjectDir("demo"), packager.BuildMetadata{Title: "Demo"}, packager.MediaPaths{})
	if err != nil {
		t.Fatalf("build must succeed even when validation fails: %v", err)
	}
	if res.Valid {
		t.Fatal("stub validator rejects everything, result must be invalid")
	}
	if res.Repaired {
		t.Fatal("repair disabled, nothing may be repaired")
	}
	if _, statErr := os.Stat(res.ArtifactPath); statErr != nil {
		t.Fatalf("artifact must still be written: %v", statErr)
	}
}

func TestValidateProjectSweepsVersions(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	pk := packager.New(cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := pk.Build(ctx, cfg.ProjectDir("demo"), packager.BuildMetadata{Title: "Demo"}, packager.MediaPaths{}); err != nil {
			t.Fatal(err)
		}
	}

	current, err := pk.ValidateProject(ctx, cfg.ProjectDir("demo"), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(current) != 1 {
		t.Fatalf("expected only the current artifact, got %d reports", len(current))
	}

	all, err := pk.ValidateProject(ctx, cfg.ProjectDir("demo"), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected current plus two snapshots, got %d reports", len(all))
	}
	for _, report := range all {
		if !report.Valid || !report.Basic {
			t.Fatalf("fallback validation should accept well formed shells: %#v", report)
		}
	}
}
