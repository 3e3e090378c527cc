package domain

// Output formats understood by the cli.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config is the rectcalc configuration, optionally loaded from a YAML file.
type Config struct {
	Dimensions DimensionsConfig
	Output     OutputConfig
}

type DimensionsConfig struct {
	Length float64
	Width  float64
}

type OutputConfig struct {
	Format string
}

// DefaultConfig reproduces the demonstration run: a 7 x 8 rectangle printed as plain text.
func DefaultConfig() Config {
	return Config{
		Dimensions: DimensionsConfig{
			Length: 7.0,
			Width:  8.0,
		},
		Output: OutputConfig{Format: FormatPretty},
	}
}

// IsKnownFormat reports whether f is an output format the cli can print.
func IsKnownFormat(f string) bool {
	switch f {
	case FormatPretty, FormatJSON:
		return true
	default:
		return false
	}
}
