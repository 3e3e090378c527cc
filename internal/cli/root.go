package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rectcalc/internal/infra/config"
	"github.com/aalvaropc/rectcalc/internal/infra/logger"
	"github.com/aalvaropc/rectcalc/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{loader: config.NewLoader()}
	var format string

	cmd := &cobra.Command{
		Use:          "rectcalc",
		Short:        "rectcalc — area and perimeter of a rectangle",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := setupLogging(cmd, opts.debug)
			defer cleanup()

			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = normalizeFormat(format)
			}

			uc := usecase.NewMeasureRectangle(usecase.WithLogger(logger.L()))
			m, err := uc.Execute(cmd.Context(), cfg.Dimensions.Length, cfg.Dimensions.Width)
			if err != nil {
				return err
			}

			return printMeasurement(cmd.OutOrStdout(), m, cfg.Output.Format)
		},
	}

	opts.bindFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(tuiCmd(opts))
	return cmd
}

func setupLogging(cmd *cobra.Command, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Out:   cmd.ErrOrStderr(),
		Debug: debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
