package generator

import "github.com/SwagCode4U/projectmaker/pkg/models"

// ReportSink exports a composed preview to an external document format.
// The build pipeline never calls it; outer surfaces that want a shareable
// summary of a project plan implement and invoke it themselves.
type ReportSink interface {
	Publish(cfg models.ProjectConfig, tree *models.TreeNode) error
}
