package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Svelte scaffolds a Vite-based Svelte frontend with Tailwind.
type Svelte struct{}

func (Svelte) Normalize(string) string { return "svelte" }

func (Svelte) Meta() framework.Meta { return framework.Meta{ID: "svelte", DevPort: 3010} }

func (Svelte) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.File("package.json"),
		models.File("index.html"),
		models.File("vite.config.js"),
		models.File("tailwind.config.js"),
		models.File("postcss.config.js"),
		models.Dir("public", models.File("logo.png")),
		models.Dir("src",
			models.File("App.svelte"),
			models.File("app.css"),
			models.File("main.js"),
			models.Dir("lib",
				models.File("api.js"),
				models.File("utils.js"),
			),
			models.Dir("routes", models.File("Home.svelte")),
		),
	)
}

func (Svelte) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.SveltePackageJSON(cfg)},
		{Rel: "vite.config.js", Content: templates.SvelteViteConfig(cfg)},
		{Rel: "index.html", Content: templates.SvelteIndexHTML(cfg)},
		{Rel: "tailwind.config.js", Content: templates.TailwindConfig(`"./index.html", "./src/**/*.svelte"`)},
		{Rel: "postcss.config.js", Content: templates.PostcssConfig()},
		{Rel: "src/App.svelte", Content: templates.SvelteApp(cfg)},
		{Rel: "src/app.css", Content: templates.SvelteAppCSS(cfg)},
		{Rel: "src/main.js", Content: templates.SvelteMainJS(cfg)},
		{Rel: "src/lib/api.js", Content: templates.SvelteLibAPIJS(cfg)},
		{Rel: "src/lib/utils.js", Content: templates.SvelteLibUtilsJS(cfg)},
		{Rel: "src/routes/Home.svelte", Content: templates.SvelteHome(cfg)},
		{Rel: "public/logo.png", Content: []byte("placeholder")},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "svelte"
	return result
}
