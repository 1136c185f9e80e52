package frontend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Angular scaffolds a standalone-component Angular frontend.
type Angular struct{}

func (Angular) Normalize(string) string { return "angular" }

func (Angular) Meta() framework.Meta { return framework.Meta{ID: "angular", DevPort: 3010} }

func (Angular) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.FrontendFolder(),
		models.File("package.json"),
		models.File("angular.json"),
		models.File("tsconfig.json"),
		models.Dir("src",
			models.File("index.html"),
			models.File("main.ts"),
			models.Dir("app",
				models.File("app.component.ts"),
				models.File("app.component.html"),
			),
		),
	)
}

func (Angular) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.AngularPackageJSON(cfg)},
		{Rel: "angular.json", Content: templates.AngularJSON(cfg)},
		{Rel: "tsconfig.json", Content: templates.AngularTSConfig(cfg)},
		{Rel: "src/index.html", Content: templates.AngularIndexHTML(cfg)},
		{Rel: "src/main.ts", Content: templates.AngularMain(cfg)},
		{Rel: "src/app/app.component.ts", Content: templates.AngularComponent(cfg)},
		{Rel: "src/app/app.component.html", Content: templates.AngularComponentHTML(cfg)},
	}
	result := framework.WriteTree(root, cfg.FrontendFolder(), files)
	result.Type = "angular"
	return result
}
