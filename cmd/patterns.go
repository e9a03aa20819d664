package cmd

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/algolens/algolens/internal/engine"
	"github.com/algolens/algolens/internal/observability"
)

// newPatternsCmd creates the `patterns` command, which lists the closed set
// of detectable patterns and whether each has a reference simulation.
func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Lists the supported algorithm patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := engine.New(cfg.Analysis(), observability.GetLogger())

			json := jsoniter.ConfigCompatibleWithStandardLibrary
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analyzer.Patterns())
		},
	}
}

func init() {
	rootCmd.AddCommand(newPatternsCmd())
}
