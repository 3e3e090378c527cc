package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/rectcalc/internal/infra/logger"
	"github.com/aalvaropc/rectcalc/internal/ui/tui"
	"github.com/aalvaropc/rectcalc/internal/usecase"
)

func tuiCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the dimensions interactively and watch area/perimeter update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := setupLogging(cmd, opts.debug)
			defer cleanup()

			deps, err := tuiDeps(cmd, opts)
			if err != nil {
				return err
			}
			return tui.Run(deps)
		},
	}
}

// tuiDeps prefills the form with the same layering as the root command:
// defaults, then --config, then explicitly set --length/--width.
func tuiDeps(cmd *cobra.Command, opts *globalOptions) (tui.Deps, error) {
	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return tui.Deps{}, err
	}

	return tui.Deps{
		Measurer: usecase.NewMeasureRectangle(usecase.WithLogger(logger.L())),
		Length:   cfg.Dimensions.Length,
		Width:    cfg.Dimensions.Width,
		Logger:   logger.L(),
		Debug:    opts.debug,
	}, nil
}
