package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vidpack/internal/config"
)

// emitJSON renders v as indented JSON on w, for the --json flag every
// read-oriented command carries.
func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resolveProjectDir maps a command line argument to a project directory.
// Bare names refer to projects under projects_dir; anything containing a
// path separator is treated as a filesystem path.
func resolveProjectDir(cfg *config.Config, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.New("project name or path is required")
	}
	if strings.ContainsRune(arg, os.PathSeparator) {
		return config.ExpandPath(arg)
	}
	return cfg.ProjectDir(arg), nil
}

// resolveArtifactPath maps a command line argument to an artifact path. A
// bare name or a directory path resolves to the project's current artifact;
// an .svg path is used as-is.
func resolveArtifactPath(cfg *config.Config, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasSuffix(arg, ".svg") {
		return config.ExpandPath(arg)
	}
	dir, err := resolveProjectDir(cfg, arg)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(dir)+".svg"), nil
}

// readParagraphs loads description text from a file, splitting it into
// paragraphs on blank lines.
func readParagraphs(path string) ([]string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read description text: %w", err)
	}

	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		trimmed := strings.TrimSpace(block)
		if trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs, nil
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func validationMode(basic bool) string {
	if basic {
		return "basic"
	}
	return "xmllint"
}
