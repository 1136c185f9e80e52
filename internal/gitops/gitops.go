// Package gitops initializes version control in generated projects by
// shelling out to the git binary.
package gitops

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Git runs git commands against generated project directories.
type Git struct {
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Git.
type Option func(*Git)

// WithTimeout overrides the per-command timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Git) { g.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Git) { g.logger = logger }
}

// New creates a Git initializer.
func New(opts ...Option) *Git {
	g := &Git{
		timeout: defaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init runs "git init" in dir. Project builds treat a failure here as a
// warning, not a build failure, so the error carries enough context to be
// reported and dropped.
func (g *Git) Init(ctx context.Context, dir string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		g.logger.Warn("git init failed", "dir", dir, "stderr", msg, "error", err)
		if msg != "" {
			return fmt.Errorf("git init: %s: %w", msg, err)
		}
		return fmt.Errorf("git init: %w", err)
	}

	g.logger.Info("git repository initialized", "dir", dir)
	return nil
}
