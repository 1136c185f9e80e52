package backend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// NextAPI scaffolds an API-only Next.js backend (pages/api routes).
// It is registered under the distinct "nextjs_api" id so plain "nextjs"
// keeps meaning the frontend framework.
type NextAPI struct{}

func (NextAPI) Normalize(string) string { return "nextjs_api" }

func (NextAPI) Meta() framework.Meta { return framework.Meta{ID: "nextjs_api", DevPort: 5177} }

func (NextAPI) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.BackendFolder(),
		models.File("package.json"),
		models.File("next.config.mjs"),
		models.Dir("pages",
			models.Dir("api",
				models.File("hello.js"),
				models.File("items.js"),
			),
		),
	)
}

func (NextAPI) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.NextAPIPackageJSON(cfg)},
		{Rel: "next.config.mjs", Content: templates.NextConfigMJS(cfg)},
		{Rel: "pages/api/hello.js", Content: templates.NextAPIHelloRoute(cfg)},
		{Rel: "pages/api/items.js", Content: templates.NextAPIItemsRoute(cfg)},
	}
	result := framework.WriteTree(root, cfg.BackendFolder(), files)
	result.Type = "nextjs_api"
	return result
}
