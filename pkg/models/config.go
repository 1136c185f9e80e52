package models

import (
	"errors"
	"fmt"
	"strings"
)

// Default folder names used when the config leaves them empty.
const (
	DefaultBackendFolder  = "backend"
	DefaultFrontendFolder = "frontend"
)

// Sentinel errors for config validation.
var (
	// ErrEmptyProjectName indicates a build was requested without a project name.
	ErrEmptyProjectName = errors.New("project name must not be empty")

	// ErrFolderCollision indicates backend and frontend frameworks are both
	// selected but target the same folder name.
	ErrFolderCollision = errors.New("backend and frontend folder names collide")
)

// CustomFile is a user-supplied file to create inside the project.
type CustomFile struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content"`
}

// ProjectConfig describes a project to preview or materialize.
//
// Framework identifiers are free-form and case-insensitive; they are
// alias-resolved by the framework registry before dispatch. Folder names
// default to "backend"/"frontend" when empty.
type ProjectConfig struct {
	ProjectName string `yaml:"project_name" json:"project_name"`
	Description string `yaml:"description" json:"description"`

	BackendFramework  string `yaml:"backend_framework" json:"backend_framework"`
	FrontendFramework string `yaml:"frontend_framework" json:"frontend_framework"`

	BackendFolderName  string `yaml:"backend_folder_name" json:"backend_folder_name"`
	FrontendFolderName string `yaml:"frontend_folder_name" json:"frontend_folder_name"`

	// CustomFolders entries whose final segment carries a dot-extension are
	// treated as files; everything else becomes a directory tree.
	CustomFolders []string     `yaml:"custom_folders" json:"custom_folders"`
	CustomFiles   []CustomFile `yaml:"custom_files" json:"custom_files"`

	Libraries []string `yaml:"libraries" json:"libraries"`

	DatabaseType     string   `yaml:"database_type" json:"database_type"`
	DatabaseName     string   `yaml:"database_name" json:"database_name"`
	DatabaseUser     string   `yaml:"database_user" json:"database_user"`
	DatabasePassword string   `yaml:"database_password" json:"database_password"`
	DatabaseTables   []string `yaml:"database_tables" json:"database_tables"`

	// UseMigrations enables migration tooling scaffolding in the setup scripts.
	UseMigrations bool   `yaml:"use_migrations" json:"use_migrations"`
	GitRepoURL    string `yaml:"git_repo_url" json:"git_repo_url"`
	InitializeGit bool   `yaml:"initialize_git" json:"initialize_git"`

	// TargetDirectory overrides the default <output-dir>/<project-name> root.
	TargetDirectory string `yaml:"target_directory" json:"target_directory"`
}

// BackendFolder returns the configured backend folder name or its default.
func (c ProjectConfig) BackendFolder() string {
	if c.BackendFolderName == "" {
		return DefaultBackendFolder
	}
	return c.BackendFolderName
}

// FrontendFolder returns the configured frontend folder name or its default.
func (c ProjectConfig) FrontendFolder() string {
	if c.FrontendFolderName == "" {
		return DefaultFrontendFolder
	}
	return c.FrontendFolderName
}

// Validate checks the invariants required before a build.
// Preview tolerates incomplete configs; build does not.
func (c ProjectConfig) Validate() error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if c.BackendFramework != "" && c.FrontendFramework != "" &&
		strings.EqualFold(c.BackendFolder(), c.FrontendFolder()) {
		return fmt.Errorf("%w: %q", ErrFolderCollision, c.BackendFolder())
	}
	return nil
}
