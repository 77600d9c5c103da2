package packager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"vidpack/internal/config"
	"vidpack/internal/journal"
	"vidpack/internal/logging"
	"vidpack/internal/repair"
	"vidpack/internal/svgcheck"
)

var (
	// ErrArtifactNotFound indicates the target artifact does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrLocked indicates another mutation holds the project lock.
	ErrLocked = errors.New("project is locked by another operation")
)

// MediaPaths names the optional source files to embed. Empty fields mean "no
// media of that kind"; a non-empty path must exist and be readable.
type MediaPaths struct {
	Video     string
	Audio     string
	Thumbnail string
}

// BuildMetadata carries the caller-supplied project attributes for a build.
// Zero values fall back to defaults (title from the project name, template
// from configuration).
type BuildMetadata struct {
	Title      string
	Date       string
	Theme      string
	Tags       []string
	Voice      string
	Template   string
	FontSize   string
	Lang       string
	Paragraphs []string
}

// Result reports the outcome of a mutation. Validity is part of the result,
// not an error: "generated but needs attention" is a representable outcome.
type Result struct {
	ArtifactPath string
	Valid        bool
	Basic        bool
	Repaired     bool
	Errors       []string
}

// UpdateResult extends Result with whether the update was applied at all.
type UpdateResult struct {
	Applied bool
	Result
}

// Packager orchestrates artifact construction, versioning, validation, and
// repair. Each call is self-contained: state lives on disk, never in the
// Packager. Concurrent mutations of the same project are serialized through a
// per-project file lock; cross-host writers are not coordinated.
type Packager struct {
	cfg     *config.Config
	checker *svgcheck.Checker
	journal *journal.Store
	logger  *slog.Logger
	now     func() time.Time
}

// Option customizes Packager construction.
type Option func(*Packager)

// WithJournal records every mutation in the given journal store.
func WithJournal(store *journal.Store) Option {
	return func(p *Packager) { p.journal = store }
}

// WithLogger sets the logger; a component attribute is added automatically.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Packager) { p.logger = logger }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Packager) { p.now = now }
}

// New builds a Packager. Validator availability is resolved here, once.
func New(cfg *config.Config, opts ...Option) *Packager {
	p := &Packager{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "packager")
	p.checker = svgcheck.New(svgcheck.Options{
		XMLLintBin: cfg.Validator.XMLLintBin,
		Timeout:    time.Duration(cfg.Validator.TimeoutSeconds) * time.Second,
		Logger:     p.logger,
	})
	return p
}

// lockProject takes the per-project write lock. The returned release function
// must be called once the mutation is complete.
func (p *Packager) lockProject(projectDir string) (func(), error) {
	lock := flock.New(filepath.Join(projectDir, ".vidpack.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, projectDir)
	}
	return func() { _ = lock.Unlock() }, nil
}

// validateAndRepair runs the fixed validate → repair → re-validate protocol on
// the written artifact. At most one repair pass runs, guaranteeing
// termination; the second validation's verdict stands either way.
func (p *Packager) validateAndRepair(ctx context.Context, artifactPath string, logger *slog.Logger) (svgcheck.Result, bool, error) {
	res, err := p.checker.Check(ctx, artifactPath)
	if err != nil {
		return svgcheck.Result{}, false, err
	}
	if res.Valid || !p.cfg.Validator.RepairEnabled {
		return res, false, nil
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return svgcheck.Result{}, false, fmt.Errorf("read artifact for repair: %w", err)
	}
	repaired := repair.Apply(string(data))
	if repaired == string(data) {
		logger.Warn("no repair rule matched", logging.String("artifact", artifactPath))
		return res, false, nil
	}
	if err := os.WriteFile(artifactPath, []byte(repaired), 0o644); err != nil {
		return svgcheck.Result{}, false, fmt.Errorf("write repaired artifact: %w", err)
	}
	logger.Info("applied repair pass", logging.String("artifact", artifactPath))

	res, err = p.checker.Check(ctx, artifactPath)
	if err != nil {
		return svgcheck.Result{}, false, err
	}
	return res, true, nil
}

func (p *Packager) record(ctx context.Context, entry journal.Entry) {
	if p.journal == nil {
		return
	}
	if _, err := p.journal.Record(ctx, entry); err != nil {
		p.logger.Warn("journal write failed", logging.Error(err))
	}
}

func projectName(projectDir string) string {
	return filepath.Base(filepath.Clean(projectDir))
}

func sanitizeProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name is empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("project name %q contains unsupported character %q", name, r)
		}
	}
	return nil
}
