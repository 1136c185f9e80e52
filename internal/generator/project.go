// Package generator materializes project scaffolds on disk and composes
// their structural previews. It orchestrates the framework registry,
// custom entries, root files, helper scripts, and git initialization into a
// single build pass that reports per-step outcomes instead of aborting.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/framework/backend"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// ScriptSource produces the helper scripts written at the project root.
type ScriptSource interface {
	SetupScripts(cfg models.ProjectConfig) ([]models.ScriptFile, error)
}

// VCS initializes version control in a freshly built project.
type VCS interface {
	Init(ctx context.Context, dir string) error
}

// Generator builds projects under a base output directory.
type Generator struct {
	registry      *framework.Registry
	scripts       ScriptSource
	vcs           VCS
	baseOutputDir string
	logger        *slog.Logger
	now           func() time.Time
}

// GenOption configures a Generator.
type GenOption func(*Generator)

// WithScripts installs the helper-script source.
func WithScripts(s ScriptSource) GenOption {
	return func(g *Generator) { g.scripts = s }
}

// WithVCS installs the version-control initializer.
func WithVCS(v VCS) GenOption {
	return func(g *Generator) { g.vcs = v }
}

// WithBaseOutputDir sets where projects land when no explicit target
// directory is given.
func WithBaseOutputDir(dir string) GenOption {
	return func(g *Generator) { g.baseOutputDir = dir }
}

// WithGenLogger sets the generator logger.
func WithGenLogger(logger *slog.Logger) GenOption {
	return func(g *Generator) { g.logger = logger }
}

// withClock overrides the timestamp source; tests use it for stable output.
func withClock(now func() time.Time) GenOption {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator dispatching to the given registry.
func New(registry *framework.Registry, opts ...GenOption) *Generator {
	g := &Generator{
		registry:      registry,
		baseOutputDir: "generated_projects",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BuildProject creates the project on disk and returns a report of every
// operation and error along the way.
//
// The report's Success flips to false only when the project root itself
// cannot be created; every later step records its failure and the build
// moves on, so a broken helper script never costs the user their scaffold.
// When targetDir is empty the project lands under the base output directory.
func (g *Generator) BuildProject(ctx context.Context, cfg models.ProjectConfig, targetDir string) models.BuildReport {
	if targetDir == "" {
		targetDir = filepath.Join(g.baseOutputDir, cfg.ProjectName)
	}

	report := models.BuildReport{
		Success:     true,
		ProjectPath: targetDir,
		BuildID:     uuid.NewString(),
	}

	if err := os.MkdirAll(targetDir, framework.DirPerm); err != nil {
		report.Success = false
		report.Errors = append(report.Errors, fmt.Sprintf("create project root: %v", err))
		return report
	}
	report.Operations = append(report.Operations, fmt.Sprintf("Created project root: %s", targetDir))
	g.logger.Info("building project",
		"project", cfg.ProjectName, "path", targetDir, "build_id", report.BuildID)

	if IsNextFullstack(cfg) {
		report.Operations = append(report.Operations,
			"Backend: nextjs (fullstack)", "Frontend: nextjs (fullstack)")
		report.Append(buildNextFullstack(targetDir, cfg))
	} else {
		g.buildBackend(targetDir, cfg, &report)
		g.buildFrontend(targetDir, cfg, &report)
	}

	g.writeCustomEntries(targetDir, cfg, &report)
	g.writeRootFiles(targetDir, cfg, &report)
	g.writeScripts(targetDir, cfg, &report)

	if cfg.InitializeGit && g.vcs != nil {
		if err := g.vcs.Init(ctx, targetDir); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("git init: %v", err))
		} else {
			report.Operations = append(report.Operations, "Initialized Git repository")
		}
	}

	return report
}

func (g *Generator) buildBackend(root string, cfg models.ProjectConfig, report *models.BuildReport) {
	if strings.TrimSpace(cfg.BackendFramework) == "" {
		return
	}

	res := g.registry.BuildBackend(root, cfg)
	if res.Type != "" {
		report.Operations = append(report.Operations, "Backend: "+res.Type)
	}
	report.Append(res)

	// A registry miss, or a module that resolved but left the backend
	// folder empty, falls back to the built-in scaffolds so a recognized
	// framework name always produces something.
	if len(res.Operations) > 0 && !dirIsEmpty(filepath.Join(root, cfg.BackendFolder())) {
		return
	}
	if legacy, ok := legacyBackendBuild(root, cfg); ok {
		report.Append(legacy)
	}
}

func (g *Generator) buildFrontend(root string, cfg models.ProjectConfig, report *models.BuildReport) {
	if strings.TrimSpace(cfg.FrontendFramework) == "" {
		return
	}
	res := g.registry.BuildFrontend(root, cfg)
	if res.Type != "" {
		report.Operations = append(report.Operations, "Frontend: "+res.Type)
	}
	report.Append(res)
}

// legacyBackends are the direct scaffold constructors used when the registry
// path yields nothing. Any Next.js spelling lands on the API scaffold here.
var legacyBackends = map[string]framework.Module{
	"fastapi":    backend.FastAPI{},
	"flask":      backend.Flask{},
	"django":     backend.Django{},
	"express":    backend.Express{},
	"nextjs_api": backend.NextAPI{},
}

func legacyBackendBuild(root string, cfg models.ProjectConfig) (models.BuildResult, bool) {
	id := framework.Normalize(cfg.BackendFramework, framework.Backend)
	if isNextSpelling(cfg.BackendFramework, backendNextSpellings) {
		id = "nextjs_api"
	}
	m, ok := legacyBackends[id]
	if !ok {
		return models.BuildResult{}, false
	}
	return m.Build(root, cfg), true
}

func dirIsEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return true
	}
	return len(entries) == 0
}

func (g *Generator) writeCustomEntries(root string, cfg models.ProjectConfig, report *models.BuildReport) {
	for _, entry := range customFolders(cfg) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		rel := NormalizeRel(entry, cfg)
		if rel == "" {
			continue
		}
		dest := filepath.Join(root, filepath.FromSlash(rel))
		if IsFileLike(rel) {
			if err := writeFileAt(dest, nil); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("custom entry %s: %v", rel, err))
				continue
			}
			report.Operations = append(report.Operations, "Created file: "+rel)
		} else {
			if err := os.MkdirAll(dest, framework.DirPerm); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("custom entry %s: %v", rel, err))
				continue
			}
			report.Operations = append(report.Operations, "Created folder: "+rel)
		}
	}

	for _, f := range cfg.CustomFiles {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		rel := NormalizeRel(name, cfg)
		if rel == "" {
			continue
		}
		dest := filepath.Join(root, filepath.FromSlash(rel))
		if err := writeFileAt(dest, []byte(f.Content)); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("custom file %s: %v", name, err))
			continue
		}
		report.Operations = append(report.Operations, "Created file: "+rel)
	}
}

func (g *Generator) writeRootFiles(root string, cfg models.ProjectConfig, report *models.BuildReport) {
	readme := templates.RootReadme(cfg, g.now())
	if err := os.WriteFile(filepath.Join(root, "README.md"), readme, framework.FilePerm); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("write README.md: %v", err))
	} else {
		report.Operations = append(report.Operations, "Created README.md")
	}

	if err := os.WriteFile(filepath.Join(root, ".gitignore"), templates.RootGitignore(), framework.FilePerm); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("write .gitignore: %v", err))
	} else {
		report.Operations = append(report.Operations, "Created .gitignore")
	}
}

func (g *Generator) writeScripts(root string, cfg models.ProjectConfig, report *models.BuildReport) {
	if g.scripts == nil {
		return
	}
	files, err := g.scripts.SetupScripts(cfg)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("script generation: %v", err))
		return
	}
	for _, f := range files {
		perm := framework.FilePerm
		if strings.HasSuffix(f.Name, ".sh") {
			perm = framework.ExecPerm
		}
		if err := os.WriteFile(filepath.Join(root, f.Name), []byte(f.Content), perm); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("write script %s: %v", f.Name, err))
			continue
		}
		report.Operations = append(report.Operations, "Created script: "+f.Name)
	}
}

func writeFileAt(dest string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), framework.DirPerm); err != nil {
		return err
	}
	return os.WriteFile(dest, content, framework.FilePerm)
}
