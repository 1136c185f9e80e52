package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newTestRoot() *cobra.Command {
	cmd := &cobra.Command{Use: "projectmaker"}
	InitFlags(cmd)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cfgFile = ""

	s, err := Load(newTestRoot(), t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s != DefaultSettings {
		t.Errorf("Load() = %+v, want defaults %+v", s, DefaultSettings)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projectmaker-config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: /tmp/out\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgFile = ""

	s, err := Load(newTestRoot(), dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, "/tmp/out")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "debug")
	}
	if s.Theme != DefaultSettings.Theme {
		t.Errorf("Theme = %q, want default %q", s.Theme, DefaultSettings.Theme)
	}
}

func TestLoadExplicitFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"theme": "dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newTestRoot()
	cfgFile = path
	defer func() { cfgFile = "" }()

	s, err := Load(cmd, t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", s.Theme, "dark")
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	cmd := newTestRoot()
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { cfgFile = "" }()

	if _, err := Load(cmd, t.TempDir()); err == nil {
		t.Fatal("Load() should fail when --config points at a missing file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	cfgFile = ""
	t.Setenv("PROJECTMAKER_LOG_LEVEL", "warn")

	s, err := Load(newTestRoot(), t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "warn")
	}
}

func TestLoadFlagOverride(t *testing.T) {
	cfgFile = ""
	cmd := newTestRoot()
	if err := cmd.PersistentFlags().Set("output-dir", "elsewhere"); err != nil {
		t.Fatal(err)
	}

	s, err := Load(cmd, t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.OutputDir != "elsewhere" {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, "elsewhere")
	}
}

func TestLoadProject(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "project.yaml")
	doc := `project_name: shop
backend_framework: fastapi
frontend_framework: react
custom_folders:
  - docs
  - scripts
initialize_git: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}
	if cfg.ProjectName != "shop" {
		t.Errorf("ProjectName = %q", cfg.ProjectName)
	}
	if cfg.BackendFramework != "fastapi" || cfg.FrontendFramework != "react" {
		t.Errorf("frameworks = %q/%q", cfg.BackendFramework, cfg.FrontendFramework)
	}
	if len(cfg.CustomFolders) != 2 {
		t.Errorf("CustomFolders = %v", cfg.CustomFolders)
	}
	if !cfg.InitializeGit {
		t.Error("InitializeGit should be true")
	}
}

func TestLoadProjectErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadProject(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrProjectFile) {
			t.Fatalf("error = %v, want ErrProjectFile", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("project_name: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadProject(path)
		if !errors.Is(err, ErrProjectFile) {
			t.Fatalf("error = %v, want ErrProjectFile", err)
		}
	})
}
