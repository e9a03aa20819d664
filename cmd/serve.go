package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/algolens/algolens/internal/engine"
	"github.com/algolens/algolens/internal/observability"
	"github.com/algolens/algolens/internal/server"
)

// newServeCmd creates and configures the `serve` command.
func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the analysis HTTP API",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind only flags the user actually set, so the empty flag
			// defaults never shadow config-file or built-in values.
			for flag, key := range map[string]string{"host": "server.host", "port": "server.port"} {
				if !cmd.Flags().Changed(flag) {
					continue
				}
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			// Re-resolve config now that the flags are bound.
			return viper.Unmarshal(&cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			analyzer := engine.New(cfg.Analysis(), logger)
			srv := server.New(cfg.Server(), analyzer, logger)

			logger.Info("Starting analysis service",
				zap.String("addr", cfg.Server().Addr()),
				zap.Float64("confidence_threshold", cfg.Analysis().ConfidenceThreshold),
				zap.Int("step_cap", cfg.Analysis().StepCap),
			)
			// Run blocks until the signal-aware command context is canceled.
			return srv.Run(cmd.Context())
		},
	}

	serveCmd.Flags().String("host", "", "interface to bind (overrides server.host)")
	serveCmd.Flags().Int("port", 0, "port to bind (overrides server.port)")
	return serveCmd
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
