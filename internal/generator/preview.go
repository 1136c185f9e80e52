package generator

import (
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// defaultCustomFolders is used when the config leaves custom folders unset.
var defaultCustomFolders = []string{"docs", "tests"}

func customFolders(cfg models.ProjectConfig) []string {
	if cfg.CustomFolders == nil {
		return defaultCustomFolders
	}
	return cfg.CustomFolders
}

// GenerateProjectTree composes the structural preview of the project without
// touching the filesystem. The tree mirrors what BuildProject would create:
// framework sub-trees, custom entries, and root files, in that order.
func (g *Generator) GenerateProjectTree(cfg models.ProjectConfig) *models.TreeNode {
	if IsNextFullstack(cfg) {
		return nextFullstackTree(cfg)
	}

	tree := models.Dir(cfg.ProjectName)

	if be := g.registry.PreviewBackendTree(cfg); be != nil {
		tree.Add(be)
	}
	if fe := g.registry.PreviewFrontendTree(cfg); fe != nil {
		tree.Add(fe)
	}

	for _, entry := range customFolders(cfg) {
		rel := NormalizeRel(entry, cfg)
		if rel == "" {
			continue
		}
		if IsFileLike(rel) {
			tree.Add(models.File(rel))
		} else {
			tree.Add(models.Dir(rel))
		}
	}

	for _, f := range cfg.CustomFiles {
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		if rel := NormalizeRel(f.Name, cfg); rel != "" {
			tree.Add(models.File(rel))
		}
	}

	tree.Add(models.File("README.md"), models.File(".gitignore"))
	if cfg.InitializeGit {
		tree.Add(models.File(".git"))
	}

	return tree
}
