// Package framework defines the framework-module contract and the registry
// that resolves user-supplied framework identifiers to concrete generators.
//
// Backend and frontend frameworks live in separate namespaces: the same
// canonical id (notably "nextjs") may resolve to different modules depending
// on which slot it occupies.
package framework

import (
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Meta is the static descriptive metadata of a framework module.
type Meta struct {
	// ID is the canonical framework identifier within its namespace.
	ID string
	// DevPort is the conventional development-server port, 0 when none.
	DevPort int
}

// Module is one supported framework. Implementations are stateless and safe
// for concurrent use.
type Module interface {
	// Normalize returns this module's own canonical id unconditionally.
	// General alias resolution is the registry's job, not the module's.
	Normalize(raw string) string

	// Meta returns static metadata with no side effects.
	Meta() Meta

	// Preview returns the structural tree the module would produce for the
	// config, or nil when it has nothing to contribute. It must not touch
	// the filesystem.
	Preview(cfg models.ProjectConfig) *models.TreeNode

	// Build writes this framework's boilerplate under
	// root/<namespace folder>, creating parent directories as needed.
	// Failures are reported as entries in the result's Errors, never as a
	// panic that escapes the registry.
	Build(root string, cfg models.ProjectConfig) models.BuildResult
}
