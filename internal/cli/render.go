package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// CLI styles shared by all commands.
var (
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard renders content inside a rounded border box with a styled title.
func renderCard(title, content string) string {
	titleLine := cliPrimary.Bold(true).Render(title)
	return cardStyle().Render(titleLine + "\n\n" + content)
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	titleLine := cliSuccess.Render("✓") + " " + title
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		for i, d := range details {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(d)
		}
	}
	return cardStyle().Render(body.String())
}

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key: value lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width+1, p.key+":")))
		b.WriteString(" " + p.value)
	}
	return b.String()
}

var titleCaser = cases.Title(language.English)

// displayName maps a canonical framework id to its human-facing name.
func displayName(id string) string {
	switch id {
	case "fastapi":
		return "FastAPI"
	case "nextjs":
		return "Next.js"
	case "nextjs_api":
		return "Next.js API"
	case "html":
		return "HTML"
	case "vue":
		return "Vue.js"
	case "nestjs":
		return "NestJS"
	default:
		return titleCaser.String(id)
	}
}

// renderTree renders a preview tree with box-drawing connectors.
func renderTree(root *models.TreeNode) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(cliPrimary.Bold(true).Render(root.Name) + "/\n")
	renderChildren(&b, root.Children, "")
	return b.String()
}

func renderChildren(b *strings.Builder, children []*models.TreeNode, prefix string) {
	for i, c := range children {
		last := i == len(children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		name := c.Name
		if c.IsDir() {
			name += "/"
		}
		b.WriteString(prefix + cliBorder.Render(connector) + name + "\n")
		if c.IsDir() {
			renderChildren(b, c.Children, childPrefix)
		}
	}
}
