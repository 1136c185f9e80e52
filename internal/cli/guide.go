package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SwagCode4U/projectmaker/internal/cli/wizard"
	"github.com/SwagCode4U/projectmaker/internal/scripts"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Render the installation guide for a project definition",
	Long: `Guide renders the INSTALL_GUIDE.md a build would generate, styled for
the terminal, so the full setup walkthrough can be read before building.`,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().StringP("file", "f", "", "project definition file (YAML)")
}

func runGuide(cmd *cobra.Command, _ []string) error {
	cfg, err := loadOrAskConfig(cmd)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled.")
			return nil
		}
		return err
	}

	markdown := installGuideFor(cfg)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		styleOption(settings.Theme),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func styleOption(theme string) glamour.TermRendererOption {
	switch theme {
	case "", "auto":
		return glamour.WithAutoStyle()
	default:
		return glamour.WithStylePath(theme)
	}
}

// installGuideFor extracts the INSTALL_GUIDE.md payload from the script set.
func installGuideFor(cfg models.ProjectConfig) string {
	files, err := scripts.Builder{}.SetupScripts(cfg)
	if err != nil {
		return ""
	}
	for _, f := range files {
		if f.Name == "INSTALL_GUIDE.md" {
			return f.Content
		}
	}
	return ""
}
