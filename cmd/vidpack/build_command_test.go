package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildShowVersionsFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	textFile := filepath.Join(env.baseDir, "desc.txt")
	if err := os.WriteFile(textFile, []byte("First paragraph.\n\nSecond paragraph.\n"), 0o644); err != nil {
		t.Fatalf("write text file: %v", err)
	}

	out, _, err := runCLI(t, []string{"build", "demo", "--title", "Demo Artifact", "--text", textFile}, env.configPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "Artifact")
	requireContains(t, out, "demo.svg")

	if _, err := os.Stat(env.cfg.ArtifactPath("demo")); err != nil {
		t.Fatalf("artifact missing after build: %v", err)
	}

	out, _, err = runCLI(t, []string{"show", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Demo Artifact")

	// A second build snapshots the first artifact.
	if _, _, err := runCLI(t, []string{"build", "demo"}, env.configPath); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	out, _, err = runCLI(t, []string{"versions", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	requireContains(t, out, "demo_v1.svg")
}

func TestBuildEmbedsThumbnail(t *testing.T) {
	env := setupCLITestEnv(t)

	thumb := filepath.Join(env.baseDir, "thumb.jpg")
	if err := os.WriteFile(thumb, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("write thumb: %v", err)
	}

	if _, _, err := runCLI(t, []string{"build", "demo", "--thumb", thumb}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := runCLI(t, []string{"show", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "image/jpeg")
}

func TestUpdateTitle(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"build", "demo"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, _, err := runCLI(t, []string{"update", "demo", "--title", "Renamed"}, env.configPath); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, _, err := runCLI(t, []string{"show", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Renamed")
}

func TestValidateReportsValidArtifact(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"build", "demo"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := runCLI(t, []string{"validate", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "valid")
}

func TestValidateMissingProject(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"validate", "ghost"}, env.configPath); err == nil {
		t.Fatal("expected error for missing project")
	}
}

func TestJournalListsOperations(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"build", "demo"}, env.configPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := runCLI(t, []string{"journal", "demo"}, env.configPath)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	requireContains(t, out, "build")
}
