package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestResolve(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "xmllint")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := Resolve(stub); got != stub {
		t.Fatalf("Resolve(%q) = %q", stub, got)
	}
	if got := Resolve("definitely-not-a-binary"); got != "" {
		t.Fatalf("expected empty path for missing binary, got %q", got)
	}
	if got := Resolve(""); got != "" {
		t.Fatalf("expected empty path for blank command, got %q", got)
	}
}

func TestDefaultIncludesXMLLint(t *testing.T) {
	reqs := Default("")
	if len(reqs) != 1 || reqs[0].Command != "xmllint" {
		t.Fatalf("unexpected defaults: %#v", reqs)
	}
	custom := Default("/opt/libxml2/bin/xmllint")
	if custom[0].Command != "/opt/libxml2/bin/xmllint" {
		t.Fatalf("custom xmllint path not honoured: %#v", custom[0])
	}
}
