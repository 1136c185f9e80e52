// Package scripts generates the helper scripts written at the root of a
// freshly built project: platform setup scripts, database bootstrap, Docker
// files, and an installation guide.
package scripts

import (
	"regexp"
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Builder produces the helper-script set for a project config.
type Builder struct{}

// SetupScripts returns the scripts to write at the project root, in a
// stable order. Entries are conditional on the config: database and
// migration scripts only appear when the matching feature is selected.
func (Builder) SetupScripts(cfg models.ProjectConfig) ([]models.ScriptFile, error) {
	files := []models.ScriptFile{
		{Name: "setup.sh", Content: bashSetup(cfg)},
		{Name: "setup.bat", Content: windowsSetup(cfg)},
	}
	if cfg.DatabaseType != "" {
		files = append(files, models.ScriptFile{Name: "db_setup.sh", Content: dbSetup(cfg)})
	}
	if cfg.UseMigrations {
		files = append(files, models.ScriptFile{Name: "migrate_init.sh", Content: migrationSetup(cfg)})
	}
	files = append(files,
		models.ScriptFile{Name: "Dockerfile", Content: dockerfile(cfg)},
		models.ScriptFile{Name: "docker-compose.yml", Content: dockerCompose(cfg)},
		models.ScriptFile{Name: "INSTALL_GUIDE.md", Content: installGuide(cfg)},
	)
	return files, nil
}

func isPythonBackend(fw string) bool {
	switch strings.ToLower(fw) {
	case "fastapi", "flask", "django":
		return true
	}
	return false
}

func isNodeBackend(fw string) bool {
	switch strings.ToLower(fw) {
	case "express", "nestjs":
		return true
	}
	return false
}

var identRe = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// sanitizeIdent coerces a user string into a safe SQL identifier.
func sanitizeIdent(s string) string {
	return identRe.ReplaceAllString(strings.TrimSpace(s), "_")
}

func dbName(cfg models.ProjectConfig) string {
	if cfg.DatabaseName != "" {
		return sanitizeIdent(cfg.DatabaseName)
	}
	return sanitizeIdent(strings.ToLower(cfg.ProjectName))
}

// npmPackageMap translates library ids from the wizard into npm packages.
var npmPackageMap = map[string]string{
	"tailwind":          "tailwindcss postcss autoprefixer",
	"emotion":           "@emotion/react @emotion/styled",
	"styled-components": "styled-components",
	"framer-motion":     "framer-motion",
	"lenis":             "lenis",
	"gsap":              "gsap",
	"three":             "three",
	"axios":             "axios",
	"react-query":       "@tanstack/react-query",
	"zustand":           "zustand",
	"redux":             "@reduxjs/toolkit react-redux",
}

func npmPackages(libraries []string) []string {
	var out []string
	for _, lib := range libraries {
		if pkgs, ok := npmPackageMap[lib]; ok {
			out = append(out, strings.Fields(pkgs)...)
		}
	}
	return out
}
