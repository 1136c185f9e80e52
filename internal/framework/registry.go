package framework

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Lookup is the plugin-discovery hook consulted when an id is not statically
// registered. It returns nil when no module exists for the id.
type Lookup func(id string, ns Namespace) Module

// Registry resolves framework identifiers to modules and dispatches
// preview/build calls to them.
//
// Resolution order is always: static table, then the Lookup hook, then
// give up. Successful dynamic lookups are cached for the lifetime of the
// Registry; the cache is insert-only and guarded by a mutex, so a single
// Registry may be shared across concurrent requests.
type Registry struct {
	mu        sync.RWMutex
	backends  map[string]Module
	frontends map[string]Module
	lookup    Lookup
	logger    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLookup installs a dynamic module-discovery hook.
func WithLookup(fn Lookup) Option {
	return func(r *Registry) { r.lookup = fn }
}

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates a Registry with no modules registered.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		backends:  make(map[string]Module),
		frontends: make(map[string]Module),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a module under its own canonical id in the given namespace.
// Later registrations win, which lets tests install fakes.
func (r *Registry) Register(ns Namespace, m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table(ns)[m.Meta().ID] = m
}

// Registered returns the canonical ids present in the static table,
// unordered.
func (r *Registry) Registered(ns Namespace) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table := r.table(ns)
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	return ids
}

// Meta returns the metadata of a registered module by canonical id.
func (r *Registry) Meta(id string, ns Namespace) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.table(ns)[id]
	if !ok {
		return Meta{}, false
	}
	return m.Meta(), true
}

// table must be called with the mutex held.
func (r *Registry) table(ns Namespace) map[string]Module {
	if ns == Backend {
		return r.backends
	}
	return r.frontends
}

// resolve normalizes raw and finds a module for it, consulting the lookup
// hook and caching its hits. A nil return means nothing to build or preview
// for that slot, which is a valid state, not an error.
func (r *Registry) resolve(raw string, ns Namespace) (Module, string) {
	id := Normalize(raw, ns)
	if id == "" {
		return nil, ""
	}

	r.mu.RLock()
	m := r.table(ns)[id]
	r.mu.RUnlock()
	if m != nil {
		return m, id
	}

	if r.lookup != nil {
		if dyn := r.lookup(id, ns); dyn != nil {
			r.mu.Lock()
			// Another goroutine may have cached it meanwhile; keep the
			// first entry so the cache stays insert-only.
			if cached, ok := r.table(ns)[id]; ok {
				dyn = cached
			} else {
				r.table(ns)[id] = dyn
			}
			r.mu.Unlock()
			return dyn, id
		}
	}

	r.logger.Warn("framework module not found",
		"namespace", string(ns), "id", id)
	return nil, id
}

// PreviewBackendTree returns the backend module's preview tree for the
// config, or nil when no module resolves or the module fails. A failing
// module degrades preview to "no sub-tree" rather than aborting the caller.
func (r *Registry) PreviewBackendTree(cfg models.ProjectConfig) *models.TreeNode {
	return r.preview(cfg.BackendFramework, Backend, cfg)
}

// PreviewFrontendTree is the frontend counterpart of PreviewBackendTree.
func (r *Registry) PreviewFrontendTree(cfg models.ProjectConfig) *models.TreeNode {
	return r.preview(cfg.FrontendFramework, Frontend, cfg)
}

func (r *Registry) preview(raw string, ns Namespace, cfg models.ProjectConfig) (tree *models.TreeNode) {
	m, id := r.resolve(raw, ns)
	if m == nil {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("framework preview failed",
				"namespace", string(ns), "id", id, "error", fmt.Sprint(rec))
			tree = nil
		}
	}()
	return m.Preview(cfg)
}

// BuildBackend dispatches a backend build. When no module resolves it
// returns an empty-success result carrying only the resolved type string.
func (r *Registry) BuildBackend(root string, cfg models.ProjectConfig) models.BuildResult {
	return r.build(root, cfg.BackendFramework, Backend, cfg)
}

// BuildFrontend dispatches a frontend build with BuildBackend semantics.
func (r *Registry) BuildFrontend(root string, cfg models.ProjectConfig) models.BuildResult {
	return r.build(root, cfg.FrontendFramework, Frontend, cfg)
}

func (r *Registry) build(root, raw string, ns Namespace, cfg models.ProjectConfig) (result models.BuildResult) {
	m, id := r.resolve(raw, ns)
	if m == nil {
		return models.BuildResult{Type: id}
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("framework build failed",
				"namespace", string(ns), "id", id, "error", fmt.Sprint(rec))
			result = models.BuildResult{
				Errors: []string{fmt.Sprintf("%s build failed: %v", id, rec)},
				Type:   id,
			}
		}
	}()
	return m.Build(root, cfg)
}
