package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

type MeasureRectangle struct {
	log *slog.Logger
}

type MeasureOption func(*MeasureRectangle)

func WithLogger(l *slog.Logger) MeasureOption {
	return func(uc *MeasureRectangle) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewMeasureRectangle(opts ...MeasureOption) *MeasureRectangle {
	uc := &MeasureRectangle{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds a rectangle with the given dimensions and returns its area and perimeter.
// Dimensions are not validated; the only error is a cancelled context.
func (uc *MeasureRectangle) Execute(ctx context.Context, length, width float64) (domain.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return domain.Measurement{}, err
	}

	var rect domain.Rectangle
	rect.SetDimensions(length, width)
	m := domain.Measure(&rect)

	uc.log.Debug("measure.completed",
		"length", domain.FormatNumber(m.Length),
		"width", domain.FormatNumber(m.Width),
		"area", domain.FormatNumber(m.Area),
		"perimeter", domain.FormatNumber(m.Perimeter),
	)
	return m, nil
}
