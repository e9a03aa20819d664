package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/algolens/algolens/api/schemas"
	"github.com/algolens/algolens/internal/engine"
	"github.com/algolens/algolens/internal/extract"
	"github.com/algolens/algolens/internal/observability"
	"github.com/algolens/algolens/internal/reporting"
)

// newAnalyzeCmd creates and configures the `analyze` command.
func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Classifies a code snippet and prints its execution trace",
		Long: `Reads algorithm code from a file (or stdin when no file is given),
detects which classic pattern it most likely implements, and emits the
synthesized step-by-step trace as JSON.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags through viper so env vars and config keys can
			// override them with the usual precedence.
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			code, err := readCode(args)
			if err != nil {
				return err
			}

			req := schemas.AnalyzeRequest{Code: code}
			if arrayFlag := viper.GetString("array"); arrayFlag != "" {
				// Same comma-separated form the extractor accepts; junk
				// tokens are dropped, not rejected.
				req.CustomArray = extract.ParseList(arrayFlag)
			}
			if cmd.Flags().Changed("target") {
				target := viper.GetInt("target")
				req.CustomTarget = &target
			}

			analyzer := engine.New(cfg.Analysis(), logger)
			resp := analyzer.Analyze(cmd.Context(), req)

			logger.Info("Analysis complete",
				zap.String("algorithm", resp.Algorithm),
				zap.Float64("confidence", resp.Confidence),
				zap.Int("steps", len(resp.Steps)),
			)

			reporter, err := reporting.New(viper.GetString("output"))
			if err != nil {
				return err
			}
			defer reporter.Close()
			return reporter.Write(&resp)
		},
	}

	analyzeCmd.Flags().String("array", "", "explicit input array as comma-separated integers (overrides extraction)")
	analyzeCmd.Flags().Int("target", 0, "explicit search target (overrides extraction)")
	analyzeCmd.Flags().StringP("output", "o", "", "write the JSON report to this file instead of stdout")
	return analyzeCmd
}

// readCode loads the submission from the file argument or stdin.
func readCode(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
}
