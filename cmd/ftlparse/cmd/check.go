package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hlubek/ftlparse"
	"github.com/hlubek/ftlparse/ast"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.ftl>...",
	Short: "Parse one or more Fluent resources and report any Junk entries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var junkCount int
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			logrus.WithField("file", path).Debug("checking resource")

			resource := ftl.Parse(string(data))
			for _, entry := range resource.Body {
				junk, ok := entry.(*ast.Junk)
				if !ok {
					continue
				}
				junkCount++
				for _, ann := range junk.Annotations {
					fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, ann.Code, ann.Message)
				}
			}
		}
		if junkCount > 0 {
			return fmt.Errorf("%d entr(ies) failed to parse", junkCount)
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
