package templates

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

func TestRenderStrictMode(t *testing.T) {
	t.Parallel()

	_, err := render("strict", "{{.Missing}}", struct{ Present string }{"x"})
	if !errors.Is(err, ErrRender) {
		t.Fatalf("render() error = %v, want ErrRender", err)
	}
}

func TestRenderParseFailure(t *testing.T) {
	t.Parallel()

	_, err := render("broken", "{{.Open", nil)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("render() error = %v, want ErrRender", err)
	}
}

func TestJSONEscape(t *testing.T) {
	t.Parallel()

	out, err := render("esc", `{"d": "{{jsonEscape .D}}"}`, struct{ D string }{`say "hi"` + "\n"})
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	var doc struct{ D string }
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if doc.D != `say "hi"`+"\n" {
		t.Errorf("round-tripped %q", doc.D)
	}
}

func TestPackageNamesAreSlugged(t *testing.T) {
	t.Parallel()

	cfg := models.ProjectConfig{ProjectName: "My Shop"}

	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"react", ReactPackageJSON(cfg), "my-shop-frontend"},
		{"vue", VuePackageJSON(cfg), "my-shop-frontend"},
		{"express", ExpressPackageJSON(cfg), "my-shop-backend"},
		{"nextapi", NextAPIPackageJSON(cfg), "my-shop-api"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var doc struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(tc.data, &doc); err != nil {
				t.Fatalf("invalid JSON: %v\n%s", err, tc.data)
			}
			if doc.Name != tc.want {
				t.Errorf("name = %q, want %q", doc.Name, tc.want)
			}
		})
	}
}

func TestRootReadme(t *testing.T) {
	t.Parallel()

	cfg := models.ProjectConfig{
		ProjectName:       "shop",
		BackendFramework:  "fastapi",
		FrontendFramework: "react",
	}
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	out := string(RootReadme(cfg, created))
	for _, want := range []string{"# shop", "fastapi", "react", "2025-03-14 09:30:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("README missing %q", want)
		}
	}
}

func TestRootReadmeDefaults(t *testing.T) {
	t.Parallel()

	out := string(RootReadme(models.ProjectConfig{ProjectName: "bare"}, time.Now()))
	if !strings.Contains(out, "N/A") {
		t.Error("README should fall back to N/A for missing stacks")
	}
	if !strings.Contains(out, "A project generated with ProjectMaker") {
		t.Error("README should carry the default description")
	}
}
