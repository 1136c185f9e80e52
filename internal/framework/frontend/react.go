// Package frontend provides the frontend framework modules.
package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// React scaffolds a Vite-based React frontend with Tailwind.
type React struct{}

func (React) Normalize(string) string { return "react" }

func (React) Meta() framework.Meta { return framework.Meta{ID: "react", DevPort: 3010} }

func (React) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.Dir("src",
			models.File("App.jsx"),
			models.File("main.jsx"),
			models.File("index.css"),
			models.Dir("components",
				models.File("Navbar.jsx"),
				models.File("Hero.jsx"),
				models.File("Footer.jsx"),
			),
			models.Dir("hooks", models.File("useLenis.js")),
			models.Dir("styles", models.File("theme.js")),
		),
		models.Dir("public", models.File("favicon.ico")),
		models.File("index.html"),
		models.File("tailwind.config.js"),
		models.File("postcss.config.js"),
		models.File("package.json"),
	)
}

func (React) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.ReactPackageJSON(cfg)},
		{Rel: "index.html", Content: templates.ReactIndexHTML(cfg)},
		{Rel: "src/App.jsx", Content: templates.ReactApp(cfg)},
		{Rel: "src/main.jsx", Content: templates.ReactMain(cfg)},
		{Rel: "src/index.css", Content: templates.ReactCSS(cfg)},
		{Rel: "src/components/Navbar.jsx", Content: templates.ReactNavbar(cfg)},
		{Rel: "src/components/Hero.jsx", Content: templates.ReactHero(cfg)},
		{Rel: "src/components/Footer.jsx", Content: templates.ReactFooter(cfg)},
		{Rel: "src/hooks/useLenis.js", Content: templates.ReactUseLenis(cfg)},
		{Rel: "src/styles/theme.js", Content: templates.ReactTheme(cfg)},
		{Rel: "tailwind.config.js", Content: templates.TailwindConfig(`"./index.html", "./src/**/*.{js,jsx}"`)},
		{Rel: "postcss.config.js", Content: templates.PostcssConfig()},
		{Rel: "public/favicon.ico", Content: []byte("placeholder")},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "react"
	return result
}
