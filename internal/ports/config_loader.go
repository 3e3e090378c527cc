package ports

import "github.com/aalvaropc/rectcalc/internal/domain"

// ConfigLoader loads a rectcalc configuration from a source (e.g., a YAML file).
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
