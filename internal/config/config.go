// Package config loads tool settings and project definition files.
//
// Tool settings come from a projectmaker-config file, environment variables,
// and CLI flags, merged by viper in that precedence order. Project
// definitions are plain YAML files unmarshalled into models.ProjectConfig.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// ErrProjectFile indicates a project definition file could not be loaded.
var ErrProjectFile = errors.New("project file load failed")

// Settings are the tool-level options, as opposed to per-project configs.
type Settings struct {
	// OutputDir is where projects land when no target directory is given.
	OutputDir string `mapstructure:"output_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Theme selects the glamour style used by the guide command.
	Theme string `mapstructure:"theme"`
}

// DefaultSettings values.
var DefaultSettings = Settings{
	OutputDir: "generated_projects",
	LogLevel:  "info",
	Theme:     "auto",
}

// cfgFile holds the path to the settings file, set via the --config flag.
var cfgFile string

// InitFlags registers the settings flags on the root command.
func InitFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a projectmaker settings file (YAML or JSON)")
	rootCmd.PersistentFlags().String("output-dir", DefaultSettings.OutputDir, "directory where generated projects are created")
	rootCmd.PersistentFlags().String("log-level", DefaultSettings.LogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("theme", DefaultSettings.Theme, "render theme for the guide command")
}

// Load merges defaults, the settings file, environment variables, and flags
// into final Settings. A missing settings file is not an error; an explicit
// --config path that cannot be read is.
func Load(rootCmd *cobra.Command, cwd string) (Settings, error) {
	v := viper.New()

	v.SetDefault("output_dir", DefaultSettings.OutputDir)
	v.SetDefault("log_level", DefaultSettings.LogLevel)
	v.SetDefault("theme", DefaultSettings.Theme)

	v.SetEnvPrefix("PROJECTMAKER")
	v.AutomaticEnv()
	bindEnv(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
	} else {
		v.SetConfigName("projectmaker-config")
		v.AddConfigPath(cwd)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// Fall back to JSON, then to defaults.
			v.SetConfigType("json")
			_ = v.ReadInConfig()
		}
	}

	bindFlags(v, rootCmd)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("output_dir", "PROJECTMAKER_OUTPUT_DIR")
	_ = v.BindEnv("log_level", "PROJECTMAKER_LOG_LEVEL")
	_ = v.BindEnv("theme", "PROJECTMAKER_THEME")
}

func bindFlags(v *viper.Viper, rootCmd *cobra.Command) {
	_ = v.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// LoadProject reads a YAML project definition into a ProjectConfig.
// Validation is left to the caller: preview accepts incomplete configs,
// build does not.
func LoadProject(path string) (models.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ProjectConfig{}, fmt.Errorf("%w: %v", ErrProjectFile, err)
	}
	var cfg models.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.ProjectConfig{}, fmt.Errorf("%w: parse %s: %v", ErrProjectFile, path, err)
	}
	return cfg, nil
}
