// Package backend provides the backend framework modules.
//
// Each module mirrors the contract in the framework package: a pure Preview
// returning the structural tree, and a Build writing the boilerplate under
// the configured backend folder. Tree shapes and file sets stay in lockstep
// between the two so the preview is an honest promise of the build.
package backend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// FastAPI scaffolds a FastAPI backend with a SQLAlchemy data layer.
type FastAPI struct{}

func (FastAPI) Normalize(string) string { return "fastapi" }

func (FastAPI) Meta() framework.Meta { return framework.Meta{ID: "fastapi", DevPort: 8000} }

func (FastAPI) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.BackendFolder(),
		models.Dir("app",
			models.File("__init__.py"),
			models.File("main.py"),
			models.File("database.py"),
			models.File("models.py"),
			models.File("schemas.py"),
			models.File("crud.py"),
			models.Dir("routes",
				models.File("__init__.py"),
				models.File("api_routes.py"),
			),
		),
		models.File("requirements.txt"),
		models.File(".env.example"),
	)
}

func (FastAPI) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "app.py", Content: templates.FastAPIRootApp(cfg)},
		{Rel: "app/__init__.py", Content: nil},
		{Rel: "app/main.py", Content: templates.FastAPIMain(cfg)},
		{Rel: "app/database.py", Content: templates.FastAPIDatabase(cfg)},
		{Rel: "app/models.py", Content: templates.FastAPIModels(cfg)},
		{Rel: "app/schemas.py", Content: templates.FastAPISchemas(cfg)},
		{Rel: "app/crud.py", Content: templates.FastAPICRUD(cfg)},
		{Rel: "app/routes/__init__.py", Content: nil},
		{Rel: "app/routes/api_routes.py", Content: templates.FastAPIRoutes(cfg)},
		{Rel: "requirements.txt", Content: templates.FastAPIRequirements()},
		{Rel: ".env.example", Content: templates.EnvExample(cfg)},
	}
	result := framework.WriteTree(root, cfg.BackendFolder(), files)
	result.Type = "fastapi"
	return result
}
