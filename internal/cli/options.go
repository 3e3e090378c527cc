package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rectcalc/internal/domain"
	"github.com/aalvaropc/rectcalc/internal/infra/logger"
	"github.com/aalvaropc/rectcalc/internal/ports"
)

// globalOptions are the persistent flags shared by the root command and its subcommands.
type globalOptions struct {
	loader ports.ConfigLoader

	debug      bool
	configPath string
	length     float64
	width      float64
}

func (o *globalOptions) bindFlags(cmd *cobra.Command) {
	def := domain.DefaultConfig()

	pf := cmd.PersistentFlags()
	pf.BoolVar(&o.debug, "debug", false, "write debug logs (JSON) to stderr")
	pf.StringVar(&o.configPath, "config", "", "path to a rectcalc.yaml file (optional)")
	pf.Float64Var(&o.length, "length", def.Dimensions.Length, "rectangle length")
	pf.Float64Var(&o.width, "width", def.Dimensions.Width, "rectangle width")
}

// resolveConfig layers defaults, the optional config file, then explicitly set flags.
// The config file is only read when --config is given.
func (o *globalOptions) resolveConfig(cmd *cobra.Command) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path := strings.TrimSpace(o.configPath); path != "" {
		loaded, err := o.loader.LoadConfig(path)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = loaded
		logger.L().Debug("config.loaded", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Dimensions.Length = o.length
	}
	if flags.Changed("width") {
		cfg.Dimensions.Width = o.width
	}
	return cfg, nil
}
