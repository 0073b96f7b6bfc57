package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "ftlparse",
		Short:        "ftlparse",
		SilenceUsage: true,
		Long:         `CLI tool to parse Fluent (.ftl) resources into their syntax tree and report syntax errors.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyLogSettings()
		},
	}

	verbose    bool
	withSpans  bool
	configFile string
	logLevel   string
	logFormat  string
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVar(&withSpans, "spans", false, "include byte-offset spans on every AST node")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a .ftlparse.yaml config file (defaults to ./.ftlparse.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log output format (text|json); overrides the config file")
	return rootCmd.Execute()
}

// applyLogSettings resolves the effective log level and format from flags,
// falling back to the config file and then to fixed defaults, and applies
// them to logrus before any command runs.
func applyLogSettings() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = "info"
	}
	if verbose {
		level = "debug"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)

	format := logFormat
	if format == "" {
		format = cfg.LogFormat
	}
	if format == "" {
		format = "text"
	}
	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid --log-format %q: must be \"text\" or \"json\"", format)
	}
	return nil
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
