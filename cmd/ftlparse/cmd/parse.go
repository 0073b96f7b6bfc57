package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hlubek/ftlparse"
	"github.com/hlubek/ftlparse/parser"
)

var debugDump bool

var parseCmd = &cobra.Command{
	Use:   "parse <file.ftl>",
	Short: "Parse a Fluent resource and print its syntax tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		spans := cfg.Spans
		if cmd.Flags().Changed("spans") {
			spans = withSpans
		}
		logrus.WithField("file", args[0]).WithField("spans", spans).Debug("parsing resource")

		resource := ftl.Parse(string(data), parser.WithSpans(spans))

		if debugDump {
			repr.Println(resource)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resource)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&debugDump, "debug", false, "print a repr-formatted dump of the tree instead of JSON")
	rootCmd.AddCommand(parseCmd)
}
