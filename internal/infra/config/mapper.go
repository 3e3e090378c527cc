package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig.
// Dimensions are taken as-is; only the output format is checked.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if l := yc.Rectcalc.Dimensions.Length; l != nil {
		cfg.Dimensions.Length = *l
	}
	if w := yc.Rectcalc.Dimensions.Width; w != nil {
		cfg.Dimensions.Width = *w
	}

	if f := strings.ToLower(strings.TrimSpace(yc.Rectcalc.Output.Format)); f != "" {
		if !domain.IsKnownFormat(f) {
			return domain.Config{}, invalidField(path, "rectcalc.output.format",
				fmt.Sprintf("unsupported format %q (expected pretty|json)", yc.Rectcalc.Output.Format))
		}
		cfg.Output.Format = f
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
