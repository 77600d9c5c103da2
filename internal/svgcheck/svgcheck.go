package svgcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"vidpack/internal/deps"
	"vidpack/internal/logging"
)

// ErrArtifactNotFound indicates the artifact to validate does not exist.
var ErrArtifactNotFound = errors.New("artifact not found")

const defaultTimeout = 10 * time.Second

// Result is the outcome of one validation pass. It is produced fresh on every
// call and never cached. Basic marks results from the built-in fallback check,
// which is weaker than a strict conformance run.
type Result struct {
	Valid  bool
	Errors []string
	Basic  bool
}

// Options configures a Checker.
type Options struct {
	// XMLLintBin is the strict conformance checker command. Empty means
	// "xmllint"; availability is resolved once at construction.
	XMLLintBin string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Checker validates artifact structure. The external tool path is captured at
// construction time as an explicit capability; an empty path means every check
// runs the built-in basic validation.
type Checker struct {
	xmllintPath string
	timeout     time.Duration
	logger      *slog.Logger
}

// New resolves tool availability and returns a ready Checker.
func New(opts Options) *Checker {
	bin := strings.TrimSpace(opts.XMLLintBin)
	if bin == "" {
		bin = "xmllint"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Checker{
		xmllintPath: deps.Resolve(bin),
		timeout:     timeout,
		logger:      logger,
	}
}

// External reports whether strict external validation is available.
func (c *Checker) External() bool {
	return c.xmllintPath != ""
}

// Check validates the artifact at path. Malformed content is reported in the
// Result, never as an error; only a missing or unreadable artifact escalates.
// A hung or missing external checker downgrades to the basic built-in check.
func (c *Checker) Check(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return Result{}, fmt.Errorf("read artifact: %w", err)
	}

	if c.xmllintPath == "" {
		c.logger.Warn("strict validator unavailable, using basic validation",
			logging.String("artifact", path))
		return basicCheck(string(data)), nil
	}

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.xmllintPath, "--noout", path)
	output, runErr := cmd.CombinedOutput()
	if runErr == nil {
		return Result{Valid: true}, nil
	}

	if runCtx.Err() != nil {
		// Treat a hang as "validator unavailable" rather than blocking the
		// packaging pipeline indefinitely.
		c.logger.Warn("strict validator timed out, using basic validation",
			logging.String("artifact", path),
			logging.Duration("timeout", c.timeout))
		return basicCheck(string(data)), nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return Result{Valid: false, Errors: diagnosticLines(output)}, nil
	}
	return Result{}, fmt.Errorf("run %s: %w", c.xmllintPath, runErr)
}

func basicCheck(text string) Result {
	trimmed := strings.TrimSpace(text)
	var errs []string
	if !strings.HasPrefix(trimmed, "<svg") {
		errs = append(errs, "basic validation: missing <svg> opening tag")
	}
	if !strings.Contains(trimmed, "</svg>") {
		errs = append(errs, "basic validation: missing </svg> closing tag")
	}
	return Result{Valid: len(errs) == 0, Errors: errs, Basic: true}
}

func diagnosticLines(output []byte) []string {
	lines := strings.Split(string(output), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, "strict validation failed")
	}
	return cleaned
}
