package backend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Flask scaffolds a single-module Flask backend.
type Flask struct{}

func (Flask) Normalize(string) string { return "flask" }

func (Flask) Meta() framework.Meta { return framework.Meta{ID: "flask", DevPort: 5000} }

func (Flask) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.BackendFolder(),
		models.File("app.py"),
		models.File("config.py"),
		models.File("models.py"),
		models.File("routes.py"),
		models.File("requirements.txt"),
		models.File(".env.example"),
	)
}

func (Flask) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "app.py", Content: templates.FlaskApp(cfg)},
		{Rel: "config.py", Content: templates.FlaskConfig(cfg)},
		{Rel: "models.py", Content: templates.FlaskModels(cfg)},
		{Rel: "routes.py", Content: templates.FlaskRoutes(cfg)},
		{Rel: "requirements.txt", Content: templates.FlaskRequirements()},
		{Rel: ".env.example", Content: templates.EnvExample(cfg)},
	}
	result := framework.WriteTree(root, cfg.BackendFolder(), files)
	result.Type = "flask"
	return result
}
