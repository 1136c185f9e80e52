// Package wizard provides the interactive project-definition wizard used
// when no config file is given on the command line.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Run walks the user through a project definition and returns the resulting
// config. Selections named "none" map to empty framework slots.
func Run() (models.ProjectConfig, error) {
	var (
		cfg           models.ProjectConfig
		backend       string
		frontend      string
		database      string
		customFolders string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used as the root folder name").
				Validate(notEmpty).
				Value(&cfg.ProjectName),
			huh.NewInput().
				Title("Description").
				Placeholder("What does this project do?").
				Value(&cfg.Description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Backend framework").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("FastAPI", "fastapi"),
					huh.NewOption("Flask", "flask"),
					huh.NewOption("Django", "django"),
					huh.NewOption("Express", "express"),
					huh.NewOption("Next.js API", "nextjs_api"),
				).
				Value(&backend),
			huh.NewSelect[string]().
				Title("Frontend framework").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("React", "react"),
					huh.NewOption("Vue.js", "vue"),
					huh.NewOption("Svelte", "svelte"),
					huh.NewOption("Angular", "angular"),
					huh.NewOption("Next.js", "nextjs"),
					huh.NewOption("Plain HTML", "html"),
				).
				Value(&frontend),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("MySQL", "mysql"),
					huh.NewOption("PostgreSQL", "postgresql"),
					huh.NewOption("MongoDB", "mongodb"),
				).
				Value(&database),
			huh.NewConfirm().
				Title("Use database migrations?").
				Value(&cfg.UseMigrations),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Extra folders").
				Description("Comma-separated; entries with a dot-extension become files").
				Placeholder("docs, tests").
				Value(&customFolders),
			huh.NewConfirm().
				Title("Initialize a git repository?").
				Value(&cfg.InitializeGit),
			huh.NewInput().
				Title("Git repository URL").
				Placeholder("https://github.com/you/project.git (optional)").
				Value(&cfg.GitRepoURL),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return models.ProjectConfig{}, ErrCancelled
		}
		return models.ProjectConfig{}, fmt.Errorf("wizard error: %w", err)
	}

	cfg.BackendFramework = backend
	cfg.FrontendFramework = frontend
	cfg.DatabaseType = database
	cfg.CustomFolders = splitList(customFolders)
	return cfg, nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// splitList parses a comma-separated input into trimmed entries.
// Returns nil for blank input so downstream defaults apply.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
