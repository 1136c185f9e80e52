package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// HTML scaffolds a dependency-free static frontend. It doubles as the
// fallback shape for unrecognized frontend frameworks.
type HTML struct{}

func (HTML) Normalize(string) string { return "html" }

func (HTML) Meta() framework.Meta { return framework.Meta{ID: "html", DevPort: 0} }

func (HTML) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.File("index.html"),
		models.File("style.css"),
		models.File("script.js"),
	)
}

func (HTML) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "index.html", Content: templates.PlainHTML(cfg)},
		{Rel: "style.css", Content: templates.PlainCSS(cfg)},
		{Rel: "script.js", Content: templates.PlainJS(cfg)},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "html"
	return result
}
