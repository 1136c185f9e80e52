package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Vue scaffolds a Vite-based Vue 3 frontend.
type Vue struct{}

func (Vue) Normalize(string) string { return "vue" }

func (Vue) Meta() framework.Meta { return framework.Meta{ID: "vue", DevPort: 3010} }

func (Vue) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.File("package.json"),
		models.File("index.html"),
		models.Dir("src",
			models.File("App.vue"),
			models.File("main.js"),
		),
	)
}

func (Vue) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.VuePackageJSON(cfg)},
		{Rel: "index.html", Content: templates.VueIndexHTML(cfg)},
		{Rel: "src/App.vue", Content: templates.VueApp(cfg)},
		{Rel: "src/main.js", Content: templates.VueMain(cfg)},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "vue"
	return result
}
