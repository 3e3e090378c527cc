package tui

import (
	"log/slog"

	"github.com/aalvaropc/rectcalc/internal/ports"
)

type Deps struct {
	Measurer ports.RectangleMeasurer

	// Initial dimensions shown in the form.
	Length float64
	Width  float64

	Logger *slog.Logger
	Debug  bool
}
