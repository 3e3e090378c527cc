package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aalvaropc/rectcalc/internal/domain"
	"github.com/aalvaropc/rectcalc/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads rectcalc.yaml files from the filesystem.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}

func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, &domain.OpError{
				Op:   "config.load_config",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
			}
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
