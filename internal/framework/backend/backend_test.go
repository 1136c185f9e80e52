package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

func TestModulesPreviewBuildFolderAgreement(t *testing.T) {
	t.Parallel()

	modules := []framework.Module{FastAPI{}, Flask{}, Django{}, Express{}, NextAPI{}}
	cfg := models.ProjectConfig{ProjectName: "demo", BackendFolderName: "server"}

	for _, m := range modules {
		m := m
		t.Run(m.Meta().ID, func(t *testing.T) {
			t.Parallel()

			tree := m.Preview(cfg)
			if tree == nil {
				t.Fatal("Preview returned nil")
			}
			if tree.Name != "server" {
				t.Errorf("preview root = %q, want configured folder name", tree.Name)
			}

			root := t.TempDir()
			res := m.Build(root, cfg)
			if len(res.Errors) != 0 {
				t.Fatalf("Build errors: %v", res.Errors)
			}
			if res.Type != m.Meta().ID {
				t.Errorf("result Type = %q, want %q", res.Type, m.Meta().ID)
			}
			if len(res.Operations) == 0 {
				t.Fatal("Build produced no operations")
			}
			for _, op := range res.Operations {
				if !strings.HasPrefix(op, "Created: server/") {
					t.Errorf("operation outside configured folder: %q", op)
				}
			}
		})
	}
}

func TestFastAPIBuildContent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := models.ProjectConfig{
		ProjectName:  "shop",
		DatabaseType: "postgresql",
		DatabaseName: "shopdb",
	}
	res := FastAPI{}.Build(root, cfg)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	main, err := os.ReadFile(filepath.Join(root, "backend", "app", "main.py"))
	if err != nil {
		t.Fatalf("read main.py: %v", err)
	}
	if !strings.Contains(string(main), "FastAPI(") {
		t.Error("main.py missing FastAPI app")
	}

	db, err := os.ReadFile(filepath.Join(root, "backend", "app", "database.py"))
	if err != nil {
		t.Fatalf("read database.py: %v", err)
	}
	if !strings.Contains(string(db), "postgresql") {
		t.Error("database.py missing postgres connection URL")
	}
}

func TestNextAPIMeta(t *testing.T) {
	t.Parallel()

	meta := NextAPI{}.Meta()
	if meta.ID != "nextjs_api" {
		t.Errorf("ID = %q, want nextjs_api", meta.ID)
	}
	if meta.DevPort != 5177 {
		t.Errorf("DevPort = %d, want 5177", meta.DevPort)
	}
}
