package backend

import (
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/templates"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Django scaffolds a Django backend with a core settings package.
type Django struct{}

func (Django) Normalize(string) string { return "django" }

func (Django) Meta() framework.Meta { return framework.Meta{ID: "django", DevPort: 8000} }

func (Django) Preview(cfg models.ProjectConfig) *models.TreeNode {
	return models.Dir(cfg.BackendFolder(),
		models.File("manage.py"),
		models.File("requirements.txt"),
		models.Dir("core",
			models.File("__init__.py"),
			models.File("settings.py"),
			models.File("urls.py"),
			models.File("wsgi.py"),
		),
	)
}

func (Django) Build(root string, cfg models.ProjectConfig) models.BuildResult {
	files := []framework.FileSpec{
		{Rel: "manage.py", Content: templates.DjangoManage(cfg)},
		{Rel: "requirements.txt", Content: templates.DjangoRequirements()},
		{Rel: "core/__init__.py", Content: nil},
		{Rel: "core/settings.py", Content: templates.DjangoSettings(cfg)},
		{Rel: "core/urls.py", Content: templates.DjangoURLs(cfg)},
		{Rel: "core/wsgi.py", Content: templates.DjangoWSGI(cfg)},
	}
	result := framework.WriteTree(root, cfg.BackendFolder(), files)
	result.Type = "django"
	return result
}
