package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwagCode4U/projectmaker/internal/cli/wizard"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Create the project files and folders on disk",
	Long: `Build materializes a project from its definition: framework scaffolds,
custom folders and files, README, .gitignore, setup scripts, and an optional
git repository.

The project definition comes from --file, or from the interactive wizard
when running in a terminal with no file given.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("file", "f", "", "project definition file (YAML)")
	buildCmd.Flags().StringP("target", "t", "", "target directory (default: <output-dir>/<project-name>)")
	buildCmd.Flags().Bool("verbose", false, "print every operation performed")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadOrAskConfig(cmd)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Build cancelled.")
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	if target == "" {
		target = cfg.TargetDirectory
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report := newGenerator().BuildProject(ctx, cfg, target)

	out := cmd.OutOrStdout()
	if !report.Success {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Build failed:"))
		for _, e := range report.Errors {
			_, _ = fmt.Fprintln(out, "  - "+e)
		}
		return fmt.Errorf("build failed for %q", cfg.ProjectName)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Path", report.ProjectPath},
			{"Build ID", report.BuildID},
			{"Operations", fmt.Sprintf("%d", len(report.Operations))},
		}),
	}
	for _, e := range report.Errors {
		details = append(details, cliWarn.Render("Warning: "+e))
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard(fmt.Sprintf("Project %q created", cfg.ProjectName), details...))

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		for _, op := range report.Operations {
			_, _ = fmt.Fprintln(out, cliMuted.Render("  "+op))
		}
	}
	return nil
}
