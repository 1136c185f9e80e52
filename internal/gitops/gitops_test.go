package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	if err := New().Init(context.Background(), dir); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Errorf(".git not created: %v", err)
	}
}

func TestInitMissingDir(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "absent")
	if err := New().Init(context.Background(), dir); err == nil {
		t.Fatal("Init() should fail for a missing directory")
	}
}

func TestInitCancelledContext(t *testing.T) {
	requireGit(t)
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New().Init(ctx, t.TempDir()); err == nil {
		t.Fatal("Init() should fail when the context is already cancelled")
	}
}
