package framework

import (
	"sync"
	"testing"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// stubModule is a configurable test module.
type stubModule struct {
	id      string
	port    int
	preview func(models.ProjectConfig) *models.TreeNode
	build   func(string, models.ProjectConfig) models.BuildResult
}

func (m stubModule) Normalize(string) string { return m.id }
func (m stubModule) Meta() Meta              { return Meta{ID: m.id, DevPort: m.port} }

func (m stubModule) Preview(cfg models.ProjectConfig) *models.TreeNode {
	if m.preview == nil {
		return models.Dir(m.id)
	}
	return m.preview(cfg)
}

func (m stubModule) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	if m.build == nil {
		return models.BuildResult{Type: m.id, Operations: []string{"Created: " + m.id}}
	}
	return m.build(root, cfg)
}

func TestRegistryStaticResolution(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Backend, stubModule{id: "fastapi", port: 8000})

	res := r.BuildBackend(t.TempDir(), models.ProjectConfig{BackendFramework: "FastAPI"})
	if res.Type != "fastapi" {
		t.Errorf("Type = %q, want fastapi", res.Type)
	}
	if len(res.Operations) != 1 {
		t.Errorf("Operations = %v, want one entry", res.Operations)
	}
}

func TestRegistryMissYieldsEmptySuccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	res := r.BuildBackend(t.TempDir(), models.ProjectConfig{BackendFramework: "zig-web"})
	if len(res.Errors) != 0 {
		t.Errorf("resolution miss must not be an error, got %v", res.Errors)
	}
	if len(res.Operations) != 0 {
		t.Errorf("resolution miss must not produce operations, got %v", res.Operations)
	}
	if res.Type != "zig-web" {
		t.Errorf("Type = %q, want resolved id echoed back", res.Type)
	}
}

func TestRegistryLookupIsCachedInsertOnly(t *testing.T) {
	t.Parallel()

	calls := 0
	r := NewRegistry(WithLookup(func(id string, ns Namespace) Module {
		calls++
		if id == "bun" && ns == Backend {
			return stubModule{id: "bun", port: 3000}
		}
		return nil
	}))

	cfg := models.ProjectConfig{BackendFramework: "bun"}
	for range 3 {
		if res := r.BuildBackend(t.TempDir(), cfg); res.Type != "bun" {
			t.Fatalf("Type = %q, want bun", res.Type)
		}
	}
	if calls != 1 {
		t.Errorf("lookup called %d times, want 1 (cached after first hit)", calls)
	}

	// Unknown ids keep consulting the hook but never cache a nil.
	miss := models.ProjectConfig{BackendFramework: "gleam"}
	r.BuildBackend(t.TempDir(), miss)
	r.BuildBackend(t.TempDir(), miss)
	if calls != 3 {
		t.Errorf("lookup called %d times total, want 3", calls)
	}
}

func TestRegistryConcurrentLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry(WithLookup(func(id string, ns Namespace) Module {
		return stubModule{id: id}
	}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.PreviewBackendTree(models.ProjectConfig{BackendFramework: "bun"})
		}()
	}
	wg.Wait()

	if _, ok := r.Meta("bun", Backend); !ok {
		t.Error("dynamic lookup result was not cached")
	}
}

func TestRegistryPreviewPanicIsIsolated(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Frontend, stubModule{
		id:      "react",
		preview: func(models.ProjectConfig) *models.TreeNode { panic("boom") },
	})

	tree := r.PreviewFrontendTree(models.ProjectConfig{FrontendFramework: "react"})
	if tree != nil {
		t.Errorf("panicking preview must yield nil, got %v", tree)
	}
}

func TestRegistryBuildPanicBecomesError(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Backend, stubModule{
		id:    "flask",
		build: func(string, models.ProjectConfig) models.BuildResult { panic("disk on fire") },
	})

	res := r.BuildBackend(t.TempDir(), models.ProjectConfig{BackendFramework: "flask"})
	if len(res.Errors) != 1 {
		t.Fatalf("Errors = %v, want one entry", res.Errors)
	}
	if res.Type != "flask" {
		t.Errorf("Type = %q, want flask", res.Type)
	}
}

func TestRegistryRegisteredAndMeta(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(Backend, stubModule{id: "fastapi", port: 8000})
	r.Register(Frontend, stubModule{id: "react", port: 3010})

	if ids := r.Registered(Backend); len(ids) != 1 || ids[0] != "fastapi" {
		t.Errorf("Registered(Backend) = %v", ids)
	}
	meta, ok := r.Meta("react", Frontend)
	if !ok || meta.DevPort != 3010 {
		t.Errorf("Meta(react) = %+v, %v", meta, ok)
	}
	if _, ok := r.Meta("react", Backend); ok {
		t.Error("frontend module must not be visible in the backend namespace")
	}
}
