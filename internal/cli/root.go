// Package cli implements the projectmaker command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SwagCode4U/projectmaker/internal/config"
	"github.com/SwagCode4U/projectmaker/internal/framework"
	"github.com/SwagCode4U/projectmaker/internal/framework/catalog"
	"github.com/SwagCode4U/projectmaker/internal/generator"
	"github.com/SwagCode4U/projectmaker/internal/gitops"
	"github.com/SwagCode4U/projectmaker/internal/scripts"
	"github.com/SwagCode4U/projectmaker/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "projectmaker",
	Short: "ProjectMaker: scaffold full-stack projects from a single config",
	Long: `ProjectMaker generates ready-to-run project skeletons for common
backend and frontend frameworks: folder trees, starter code, setup scripts,
Docker files, and an installation guide, from one YAML config or an
interactive wizard.`,
	Version: version.GetVersion(),
}

// settings holds the merged tool settings, populated before any RunE fires.
var settings = config.DefaultSettings

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("projectmaker %s\n", version.GetFullVersion()))
	config.InitFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		settings, err = config.Load(cmd.Root(), cwd)
		if err != nil {
			return err
		}
		slog.SetDefault(newLogger(settings.LogLevel))
		return nil
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newRegistry builds the framework registry with every shipped module.
func newRegistry() *framework.Registry {
	return catalog.New(framework.WithLogger(slog.Default()))
}

// newGenerator wires the full build pipeline from the loaded settings.
func newGenerator() *generator.Generator {
	return generator.New(newRegistry(),
		generator.WithScripts(scripts.Builder{}),
		generator.WithVCS(gitops.New(gitops.WithLogger(slog.Default()))),
		generator.WithBaseOutputDir(settings.OutputDir),
		generator.WithGenLogger(slog.Default()),
	)
}
