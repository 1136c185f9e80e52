package scripts

import (
	"strings"
	"testing"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

func fileNames(files []models.ScriptFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func findFile(t *testing.T, files []models.ScriptFile, name string) models.ScriptFile {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("script %s not generated, have %v", name, fileNames(files))
	return models.ScriptFile{}
}

func TestSetupScriptsBaseSet(t *testing.T) {
	t.Parallel()

	files, err := Builder{}.SetupScripts(models.ProjectConfig{ProjectName: "shop"})
	if err != nil {
		t.Fatalf("SetupScripts: %v", err)
	}

	want := []string{"setup.sh", "setup.bat", "Dockerfile", "docker-compose.yml", "INSTALL_GUIDE.md"}
	got := fileNames(files)
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q (order is fixed)", i, got[i], want[i])
		}
	}
}

func TestSetupScriptsConditionalFiles(t *testing.T) {
	t.Parallel()

	files, err := Builder{}.SetupScripts(models.ProjectConfig{
		ProjectName:   "shop",
		DatabaseType:  "mysql",
		UseMigrations: true,
	})
	if err != nil {
		t.Fatalf("SetupScripts: %v", err)
	}

	findFile(t, files, "db_setup.sh")
	findFile(t, files, "migrate_init.sh")
}

func TestBashSetupPythonBackend(t *testing.T) {
	t.Parallel()

	files, _ := Builder{}.SetupScripts(models.ProjectConfig{
		ProjectName:       "shop",
		BackendFramework:  "fastapi",
		BackendFolderName: "server",
	})
	sh := findFile(t, files, "setup.sh").Content

	if !strings.HasPrefix(sh, "#!/bin/bash") {
		t.Error("setup.sh missing shebang")
	}
	for _, want := range []string{"python3 -m venv venv", "pip install -r requirements.txt", "cd server"} {
		if !strings.Contains(sh, want) {
			t.Errorf("setup.sh missing %q", want)
		}
	}
}

func TestBashSetupVueUsesLegacyPeerDeps(t *testing.T) {
	t.Parallel()

	files, _ := Builder{}.SetupScripts(models.ProjectConfig{
		ProjectName:       "shop",
		FrontendFramework: "vue",
	})
	sh := findFile(t, files, "setup.sh").Content
	if !strings.Contains(sh, "npm install --legacy-peer-deps") {
		t.Error("vue frontend must install with --legacy-peer-deps")
	}
}

func TestBashSetupLibraryPackages(t *testing.T) {
	t.Parallel()

	files, _ := Builder{}.SetupScripts(models.ProjectConfig{
		ProjectName:       "shop",
		FrontendFramework: "react",
		Libraries:         []string{"tailwind", "axios", "not-a-known-lib"},
	})
	sh := findFile(t, files, "setup.sh").Content
	for _, pkg := range []string{"tailwindcss", "postcss", "autoprefixer", "axios"} {
		if !strings.Contains(sh, pkg) {
			t.Errorf("setup.sh missing library package %q", pkg)
		}
	}
}

func TestDockerfilePerBackend(t *testing.T) {
	t.Parallel()

	t.Run("python", func(t *testing.T) {
		t.Parallel()
		out := dockerfile(models.ProjectConfig{ProjectName: "p", BackendFramework: "django"})
		if !strings.Contains(out, "FROM python:3.11-slim") {
			t.Errorf("python backend Dockerfile wrong:\n%s", out)
		}
	})
	t.Run("node", func(t *testing.T) {
		t.Parallel()
		out := dockerfile(models.ProjectConfig{ProjectName: "p", BackendFramework: "express"})
		if !strings.Contains(out, "FROM node:18-alpine") {
			t.Errorf("node backend Dockerfile wrong:\n%s", out)
		}
	})
	t.Run("none", func(t *testing.T) {
		t.Parallel()
		if out := dockerfile(models.ProjectConfig{ProjectName: "p"}); out != "" {
			t.Errorf("no backend should yield empty Dockerfile, got %q", out)
		}
	})
}

func TestDBSetupSanitizesName(t *testing.T) {
	t.Parallel()

	out := dbSetup(models.ProjectConfig{
		ProjectName:  "My Shop!",
		DatabaseType: "postgresql",
	})
	if !strings.Contains(out, `DB_NAME="my_shop_"`) {
		t.Errorf("db name not sanitized:\n%s", out[:200])
	}
	if !strings.Contains(out, "psql -U $PGUSER") {
		t.Error("postgres setup missing psql invocation")
	}
}

func TestInstallGuideSections(t *testing.T) {
	t.Parallel()

	files, _ := Builder{}.SetupScripts(models.ProjectConfig{
		ProjectName:       "shop",
		Description:       "A shop",
		BackendFramework:  "fastapi",
		FrontendFramework: "react",
		DatabaseType:      "mongodb",
		UseMigrations:     true,
	})
	guide := findFile(t, files, "INSTALL_GUIDE.md").Content

	for _, want := range []string{
		"# Installation Guide - shop",
		"Python 3.9+",
		"Node.js 18+",
		"MONGODB database",
		"uvicorn app.main:app",
		"MONGO_URI=mongodb://localhost:27017/mydb",
		"alembic upgrade head",
	} {
		if !strings.Contains(guide, want) {
			t.Errorf("guide missing %q", want)
		}
	}
}
