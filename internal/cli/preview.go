package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SwagCode4U/projectmaker/internal/cli/wizard"
	"github.com/SwagCode4U/projectmaker/internal/config"
	"github.com/SwagCode4U/projectmaker/pkg/models"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the project structure without creating files",
	Long: `Preview composes the folder tree a build would create and prints it,
without touching the filesystem.

The project definition comes from --file, or from the interactive wizard
when running in a terminal with no file given.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("file", "f", "", "project definition file (YAML)")
}

// loadOrAskConfig resolves the project config from the --file flag or the
// interactive wizard.
func loadOrAskConfig(cmd *cobra.Command) (models.ProjectConfig, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return models.ProjectConfig{}, err
	}
	if path != "" {
		return config.LoadProject(path)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return models.ProjectConfig{}, errors.New("no project file given and not running in a terminal; pass --file")
	}
	cfg, err := wizard.Run()
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return models.ProjectConfig{}, err
		}
		return models.ProjectConfig{}, fmt.Errorf("wizard failed: %w", err)
	}
	return cfg, nil
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadOrAskConfig(cmd)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Preview cancelled.")
			return nil
		}
		return err
	}

	tree := newGenerator().GenerateProjectTree(cfg)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, renderCard("Project Preview", renderTree(tree)))
	_, _ = fmt.Fprintln(out, renderKeyValueLines([]kvPair{
		{"Project", cfg.ProjectName},
		{"Files", fmt.Sprintf("%d", tree.CountFiles())},
	}))
	return nil
}
