package frontend

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

	modules := []framework.Module{React{}, Vue{}, Svelte{}, Angular{}, NextJS{}, HTML{}}
	cfg := models.ProjectConfig{ProjectName: "demo", FrontendFolderName: "web"}

	for _, m := range modules {
		m := m
		t.Run(m.Meta().ID, func(t *testing.T) {
			t.Parallel()

			tree := m.Preview(cfg)
			if tree == nil {
				t.Fatal("Preview returned nil")
			}
			if tree.Name != "web" {
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
			for _, op := range res.Operations {
				if !strings.HasPrefix(op, "Created: web/") {
					t.Errorf("operation outside configured folder: %q", op)
				}
			}
		})
	}
}

func TestReactPackageJSONCarriesProjectName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := models.ProjectConfig{ProjectName: "My Shop"}
	if res := (React{}).Build(root, cfg); len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	data, err := os.ReadFile(filepath.Join(root, "frontend", "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	if !strings.Contains(string(data), "my-shop") {
		t.Errorf("package.json missing slugged project name:\n%s", data)
	}
}

func TestVueTemplatesKeepMustaches(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if res := (Vue{}).Build(root, models.ProjectConfig{ProjectName: "demo"}); len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	data, err := os.ReadFile(filepath.Join(root, "frontend", "src", "App.vue"))
	if err != nil {
		t.Fatalf("read App.vue: %v", err)
	}
	if !strings.Contains(string(data), "{{") {
		t.Error("Vue single-file component lost its template mustaches")
	}
}

func TestHTMLModuleIsMinimal(t *testing.T) {
	t.Parallel()

	meta := HTML{}.Meta()
	if meta.ID != "html" || meta.DevPort != 0 {
		t.Errorf("Meta = %+v", meta)
	}

	root := t.TempDir()
	res := HTML{}.Build(root, models.ProjectConfig{ProjectName: "static"})
	if len(res.Operations) != 3 {
		t.Errorf("Operations = %v, want index.html, style.css, script.js", res.Operations)
	}
}
