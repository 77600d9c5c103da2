package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"vidpack/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProjectsDir = filepath.Join(base, "projects")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	// Tests must not depend on whatever xmllint the host carries.
	cfgVal.Validator.XMLLintBin = filepath.Join(base, "no-such-xmllint")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithXMLLintStub writes a stub xmllint that exits with the given code and
// points the config at it.
func WithXMLLintStub(exitCode int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Validator.XMLLintBin = StubBinary(b.t, b.baseDir, "xmllint", exitCode)
	}
}

// WithRepairDisabled turns the repair pass off.
func WithRepairDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Validator.RepairEnabled = false
	}
}

// StubBinary writes an executable shell stub with a fixed exit code and
// returns its path.
func StubBinary(t testing.TB, baseDir, name string, exitCode int) string {
	t.Helper()
	binDir := filepath.Join(baseDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	script := "#!/bin/sh\nexit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}
