package models

// BuildResult is the outcome of a single framework-module build.
//
// Operations lists successful writes in the exact order they happened;
// Errors lists failures encountered along the way. Both can be non-empty at
// once: a module reports partial completion instead of rolling back.
type BuildResult struct {
	Operations []string `json:"operations"`
	Errors     []string `json:"errors"`

	// Type is the canonical framework id that actually handled the build,
	// or empty when no framework resolved.
	Type string `json:"type"`
}

// Merge appends another result's operations and errors, preserving order.
// The receiver's Type is kept unless empty.
func (r *BuildResult) Merge(other BuildResult) {
	r.Operations = append(r.Operations, other.Operations...)
	r.Errors = append(r.Errors, other.Errors...)
	if r.Type == "" {
		r.Type = other.Type
	}
}

// Op appends a formatted operation entry.
func (r *BuildResult) Op(description string) {
	r.Operations = append(r.Operations, description)
}

// Err appends an error entry.
func (r *BuildResult) Err(description string) {
	r.Errors = append(r.Errors, description)
}

// BuildReport is the aggregate outcome of a whole-project build.
//
// Success is false only when the top-level orchestration itself failed
// (e.g. the project root could not be created). Per-step failures appear in
// Errors alongside the operations that did succeed; callers must check both.
type BuildReport struct {
	Success     bool     `json:"success"`
	ProjectPath string   `json:"project_path"`
	BuildID     string   `json:"build_id"`
	Operations  []string `json:"operations"`
	Errors      []string `json:"errors"`
}

// Append merges a sub-step result into the report.
func (p *BuildReport) Append(r BuildResult) {
	p.Operations = append(p.Operations, r.Operations...)
	p.Errors = append(p.Errors, r.Errors...)
}
