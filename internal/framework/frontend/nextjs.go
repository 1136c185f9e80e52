package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// NextJS scaffolds an app-router Next.js frontend.
//
// When the backend slot also resolves to the Next.js family the generator
// bypasses this module and produces a single fullstack app instead; see
// the generator package.
type NextJS struct{}

func (NextJS) Normalize(string) string { return "nextjs" }

func (NextJS) Meta() framework.Meta { return framework.Meta{ID: "nextjs", DevPort: 3010} }

func (NextJS) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.File("package.json"),
		models.File("next.config.mjs"),
		models.Dir("app",
			models.File("layout.jsx"),
			models.File("page.jsx"),
		),
	)
}

func (NextJS) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.NextPackageJSON(cfg)},
		{Rel: "next.config.mjs", Content: templates.NextConfigMJS(cfg)},
		{Rel: "app/layout.jsx", Content: templates.NextLayout(cfg)},
		{Rel: "app/page.jsx", Content: templates.NextPage(cfg)},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "nextjs"
	return result
}
