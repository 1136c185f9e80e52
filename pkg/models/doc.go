// Package models provides the shared data models for ProjectMaker.
//
// This package contains the configuration, preview-tree, and build-result
// types that flow between the framework registry, the project generator,
// and the CLI surface.
//
// # Configuration
//
// [ProjectConfig] is the single input value threaded through every preview
// and build call. It is constructed once at the boundary (CLI flags, a YAML
// file, or the interactive wizard), validated with [ProjectConfig.Validate],
// and treated as immutable from then on.
//
// # Preview trees
//
// [TreeNode] is the structural result of a preview: a display-only tree of
// directory and file nodes, never backed by disk state.
//
// # Build results
//
// [BuildResult] carries the ordered operation and error lists produced by a
// single framework module build; [BuildReport] is the aggregate returned by
// the project generator, including partial results when individual steps
// fail.
package models
