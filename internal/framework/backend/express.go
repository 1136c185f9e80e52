package backend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Express scaffolds an Express backend with a modular src layout.
type Express struct{}

func (Express) Normalize(string) string { return "express" }

func (Express) Meta() framework.Meta { return framework.Meta{ID: "express", DevPort: 5177} }

func (Express) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.BackendFolder(),
		models.Dir("src",
			models.File("app.js"),
			models.File("server.js"),
			models.Dir("routes", models.File("index.js")),
			models.Dir("controllers", models.File("homeController.js")),
			models.Dir("middlewares", models.File("errorHandler.js")),
			models.Dir("utils", models.File("logger.js")),
		),
		models.File("package.json"),
		models.File(".env.example"),
	)
}

func (Express) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "package.json", Content: templates.ExpressPackageJSON(cfg)},
		{Rel: "src/app.js", Content: templates.ExpressAppJS(cfg)},
		{Rel: "src/server.js", Content: templates.ExpressServerJS(cfg)},
		{Rel: "src/routes/index.js", Content: templates.ExpressRoutesIndexJS(cfg)},
		{Rel: "src/controllers/homeController.js", Content: templates.ExpressHomeControllerJS(cfg)},
		{Rel: "src/middlewares/errorHandler.js", Content: templates.ExpressErrorHandlerJS(cfg)},
		{Rel: "src/utils/logger.js", Content: templates.ExpressLoggerJS(cfg)},
		{Rel: ".env.example", Content: templates.EnvExample(cfg)},
	}
	result := framework.WriteTree(root, cfg.BackendFolder(), files)
	result.Type = "express"
	return result
}
